package helpers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

type ServerConfig struct {
	Port      int              `yaml:"port" json:"port"`
	BasicAuth models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
}

func NewHTTPServer(logger lager.Logger, conf ServerConfig, handler http.Handler) ifrit.Runner {
	addr := fmt.Sprintf("0.0.0.0:%d", conf.Port)
	if os.Getenv("GSISCALER_TEST_RUN") == "true" {
		addr = fmt.Sprintf("localhost:%d", conf.Port)
	}

	logger.Info("new-http-server", lager.Data{"address": addr, "basic-auth": conf.BasicAuth.Enabled()})
	return http_server.New(addr, handler)
}
