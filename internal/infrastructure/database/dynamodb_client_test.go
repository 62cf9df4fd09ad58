package database

import (
	"context"
	"testing"

	appconfig "os_service_api/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectDynamoDB(t *testing.T) {
	cfg := appconfig.NewConfig()
	cfg.AWSRegion = "sa-east-1"
	cfg.DynamoDBEndpoint = "http://localhost:8000"

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)

	client, err := ConnectDynamoDB(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
