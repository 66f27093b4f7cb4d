package startup

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// RunnerBuilder names a runner together with the function creating it.
type RunnerBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
}

// CreateMembers creates every runner, exiting on the first failure.
func CreateMembers(builders []RunnerBuilder, logger lager.Logger) grouper.Members {
	var members grouper.Members
	for _, builder := range builders {
		runner, err := builder.CreateFunc()
		ExitOnError(err, logger, fmt.Sprintf("failed to create %s", builder.Name))
		members = append(members, grouper.Member{Name: builder.Name, Runner: runner})
	}
	return members
}

func Runner(name string, createFunc func() (ifrit.Runner, error)) RunnerBuilder {
	return RunnerBuilder{
		Name:       name,
		CreateFunc: createFunc,
	}
}

// StartService creates the runners and blocks until the group exits.
func StartService(logger lager.Logger, runners ...RunnerBuilder) {
	members := CreateMembers(runners, logger)
	err := StartServices(logger, members)
	ExitOnError(err, logger, "service startup failed")
}
