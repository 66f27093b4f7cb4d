package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_dynamodb_api.go ../dynamo DynamoDBAPI
//counterfeiter:generate -o ./fake_dynamo_client.go ../dynamo Client
//counterfeiter:generate -o ./fake_cloudwatch_api.go ../metric CloudWatchAPI
//counterfeiter:generate -o ./fake_metric_fetcher.go ../metric Fetcher
//counterfeiter:generate -o ./fake_gate.go ../circuitbreaker Gate
//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_policy_store.go ../scalingengine PolicyStore
//counterfeiter:generate -o ./fake_scaling_engine.go ../scalingengine ScalingEngine
//counterfeiter:generate -o ./fake_scaling_history_db.go ../db ScalingHistoryDB
//counterfeiter:generate -o ./fake_database_status.go ../healthendpoint DatabaseStatus
//counterfeiter:generate -o ./fake_scaling_status_collector.go ../healthendpoint ScalingStatusCollector
//counterfeiter:generate -o ./fake_operator.go ../provisioner Operator
