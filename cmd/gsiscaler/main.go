package main

import (
	"context"
	"flag"
	"os"

	"github.com/gsiscaler/autoscaler/circuitbreaker"
	"github.com/gsiscaler/autoscaler/config"
	"github.com/gsiscaler/autoscaler/dynamo"
	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/metric"
	"github.com/gsiscaler/autoscaler/provisioner"
	"github.com/gsiscaler/autoscaler/ratelimiter"
	"github.com/gsiscaler/autoscaler/scalingengine"
	"github.com/gsiscaler/autoscaler/server"
	"github.com/gsiscaler/autoscaler/startup"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
)

const serviceName = "gsiscaler"

func main() {
	var path string
	var dryRun, runOnce bool
	flag.StringVar(&path, "c", "", "config file")
	flag.BoolVar(&dryRun, "dry-run", false, "compute decisions without applying them")
	flag.BoolVar(&runOnce, "run-once", false, "evaluate all configured tables once and exit")
	flag.Parse()

	if err := startup.LoadEnvFiles(".env"); err != nil {
		os.Exit(1)
	}

	conf, err := startup.LoadAndValidateConfig(path)
	if err != nil {
		os.Exit(1)
	}
	if dryRun {
		conf.DryRun = true
	}

	logger := startup.InitLogger(&conf.Logging, serviceName)
	ctx := context.Background()
	gsClock := clock.NewClock()

	policies, err := config.NewPolicyStore(conf.Tables)
	startup.ExitOnError(err, logger, "failed to build scaling policies")

	awsConfig, err := helpers.LoadAWSConfig(ctx, conf.AWS)
	startup.ExitOnError(err, logger, "failed to load aws configuration", lager.Data{"region": conf.AWS.Region})

	limiter := ratelimiter.DefaultRateLimiter(conf.AWS.APICallsPerSecond, logger)
	dynamoClient := dynamo.NewClient(logger, dynamo.NewDynamoDBAPI(awsConfig, conf.AWS.Endpoint), limiter, conf.AWS.RequestTimeout)
	fetcher := metric.NewCloudWatchFetcher(logger, metric.NewCloudWatchAPI(awsConfig, conf.AWS.Endpoint), dynamoClient, limiter, gsClock, conf.LookbackPeriod, conf.AWS.RequestTimeout)
	gate := circuitbreaker.NewGate(logger, conf.CircuitBreaker)

	historyDB := startup.CreateScalingHistoryDB(ctx, conf.DB.ScalingHistoryDB, logger)
	defer func() { _ = historyDB.Closer() }()

	scalingStatusCollector := healthendpoint.NewScalingStatusCollector(serviceName, "scalingengine")
	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(serviceName, "scalingengine")
	promRegistry := prometheus.NewRegistry()
	err = healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		healthendpoint.NewDatabaseStatusCollector(serviceName, "scalingengine", "scalingHistoryDB", historyDB.DB),
		scalingStatusCollector,
		httpStatusCollector,
	}, true, logger.Session(serviceName+"-prometheus"))
	startup.ExitOnError(err, logger, "failed to register prometheus collectors")

	scalingEngine := scalingengine.NewScalingEngine(logger, dynamoClient, fetcher, policies, gate, historyDB.DB,
		scalingStatusCollector, gsClock, conf.DryRun, conf.LockSize)
	tableProvisioner := provisioner.NewProvisioner(dynamoClient, policies, scalingEngine, logger)

	if runOnce {
		err = tableProvisioner.RunOnce(ctx)
		startup.ExitOnError(err, logger, "provisioning run failed")
		return
	}

	runners := []startup.RunnerBuilder{
		startup.Runner("provisioner", func() (ifrit.Runner, error) {
			return provisioner.NewOperatorRunner(tableProvisioner, conf.CheckInterval, gsClock, logger.Session("provisioner-runner")), nil
		}),
		startup.Runner("http_server", func() (ifrit.Runner, error) {
			return server.NewServer(logger.Session("http-server"), conf.Server, historyDB.DB, scalingEngine, policies, httpStatusCollector)
		}),
		startup.Runner("health_server", func() (ifrit.Runner, error) {
			checkers := []healthendpoint.Checker{healthendpoint.DbChecker("scaling_history_db", historyDB.DB)}
			return healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger, promRegistry, healthendpoint.NewReadinessCache())
		}),
	}

	if conf.HistoryRetention > 0 {
		pruner := provisioner.NewScalingHistoryPruner(historyDB.DB, conf.HistoryRetention, gsClock, logger.Session("scaling-history-pruner"))
		runners = append(runners, startup.Runner("scaling_history_pruner", func() (ifrit.Runner, error) {
			return provisioner.NewOperatorRunner(pruner, conf.HistoryRetention/2, gsClock, logger.Session("scaling-history-pruner-runner")), nil
		}))
	}

	startup.StartService(logger, runners...)
}
