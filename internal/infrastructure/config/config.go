package config

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	defaultListenAddr = ":8080"
	defaultLogLevel   = "info"
	defaultAWSRegion  = "us-east-1"
	defaultAWSKey     = "local"
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Orders        string
	Customers     string
	Vehicles      string
	Services      string
	Materials     string
	OrderPayments string
}

type Config struct {
	// Address on which the HTTP server listens
	ListenAddr string

	// Logging level (debug, info, warn, error)
	LogLevel string

	// Restrict status changes to the forward flow graph instead of accepting
	// any known status
	StrictTransitions bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	// Optional; points the client at DynamoDB Local
	DynamoDBEndpoint string

	Tables Tables

	MercadoPagoAccessToken string

	// Approve payments locally without calling Mercado Pago
	PaymentGatewayMock bool
}

func NewConfig() *Config {
	return &Config{
		ListenAddr:         defaultListenAddr,
		LogLevel:           defaultLogLevel,
		AWSRegion:          defaultAWSRegion,
		AWSAccessKeyID:     defaultAWSKey,
		AWSSecretAccessKey: defaultAWSKey,
		Tables: Tables{
			Orders:        "orders",
			Customers:     "customers",
			Vehicles:      "vehicles",
			Services:      "services",
			Materials:     "materials",
			OrderPayments: "order_payments",
		},
	}
}

// LoadEnv overrides defaults with non-empty environment values.
func (c *Config) LoadEnv(getenv func(string) string) {
	setString := func(o *string) func(value string) {
		return func(value string) {
			if value != "" {
				*o = value
			}
		}
	}
	setBool := func(o *bool) func(value string) {
		return func(value string) {
			if value != "" {
				*o = parseBool(value)
			}
		}
	}

	envMap := map[string]func(string){
		"LISTEN_ADDR":              setString(&c.ListenAddr),
		"LOG_LEVEL":                setString(&c.LogLevel),
		"ORDER_STRICT_TRANSITIONS": setBool(&c.StrictTransitions),
		"AWS_REGION":               setString(&c.AWSRegion),
		"AWS_ACCESS_KEY_ID":        setString(&c.AWSAccessKeyID),
		"AWS_SECRET_ACCESS_KEY":    setString(&c.AWSSecretAccessKey),
		"DYNAMODB_ENDPOINT":        setString(&c.DynamoDBEndpoint),
		"ORDERS_TABLE":             setString(&c.Tables.Orders),
		"CUSTOMERS_TABLE":          setString(&c.Tables.Customers),
		"VEHICLES_TABLE":           setString(&c.Tables.Vehicles),
		"SERVICES_TABLE":           setString(&c.Tables.Services),
		"MATERIALS_TABLE":          setString(&c.Tables.Materials),
		"ORDER_PAYMENTS_TABLE":     setString(&c.Tables.OrderPayments),
		"MERCADOPAGO_ACCESS_TOKEN": setString(&c.MercadoPagoAccessToken),
		"PAYMENT_GATEWAY_MOCK":     setBool(&c.PaymentGatewayMock),
	}

	for key, parseFn := range envMap {
		parseFn(getenv(key))
	}
}

func (c *Config) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("os-service-api", pflag.ContinueOnError)

	fs.StringVarP(&c.ListenAddr, "address", "a", c.ListenAddr, "Server listen address")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.BoolVarP(&c.StrictTransitions, "strict-transitions", "s", c.StrictTransitions, "Only allow forward order status transitions")
	fs.StringVarP(&c.DynamoDBEndpoint, "dynamodb-endpoint", "d", c.DynamoDBEndpoint, "DynamoDB endpoint override")
	fs.BoolVarP(&c.PaymentGatewayMock, "payment-mock", "m", c.PaymentGatewayMock, "Approve payments locally")

	return fs.Parse(args)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on", "mock":
		return true
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(v))
	return b
}
