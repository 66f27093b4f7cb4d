package startup

import (
	"fmt"
	"os"
	"strings"

	"github.com/gsiscaler/autoscaler/config"
	"github.com/gsiscaler/autoscaler/helpers"

	"code.cloudfoundry.org/lager/v3"
	"github.com/joho/godotenv"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

// LoadEnvFiles loads the given dotenv files into the process environment.
// Variables already set are left untouched and missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			_, _ = fmt.Fprintf(os.Stdout, "failed to load env file '%s' : %s\n", file, err.Error())
			return err
		}
	}
	return nil
}

func LoadAndValidateConfig(path string) (*config.Config, error) {
	var conf *config.Config
	var err error
	if path == "" {
		conf, err = config.LoadConfig(strings.NewReader(""))
	} else {
		var configFile *os.File
		configFile, err = os.Open(path)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
			return nil, err
		}
		defer func() { _ = configFile.Close() }()
		conf, err = config.LoadConfig(configFile)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		return nil, err
	}

	err = conf.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		return nil, err
	}

	return conf, nil
}

func InitLogger(loggingConfig *helpers.LoggingConfig, serviceName string) lager.Logger {
	return helpers.InitLoggerFromConfig(loggingConfig, serviceName)
}

func StartServices(logger lager.Logger, members grouper.Members) error {
	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")
	err := <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}
	logger.Info("exited")
	return nil
}

func ExitOnError(err error, logger lager.Logger, message string, data ...lager.Data) {
	if err != nil {
		if len(data) > 0 {
			logger.Error(message, err, data[0])
		} else {
			logger.Error(message, err)
		}
		os.Exit(1)
	}
}
