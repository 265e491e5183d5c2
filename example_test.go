package hjarta_test

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/fx"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/internal/testconfig"
)

// ServerService is a service that depends on config.
type ServerService struct {
	Config testconfig.Service
}

// Address returns the first peer the service talks to.
func (s *ServerService) Address() string {
	return fmt.Sprintf("%s -> %s", s.Config.Name, s.Config.Peers[0])
}

// Example_appWithConfigIntegration demonstrates how to use App, Options, and layered Config together.
func Example_appWithConfigIntegration() {
	// Step 1: Provide the parser and fetcher through Fx and resolve the
	// configuration with config.Provider. Fields missing from the document
	// come from the defaults, and the environment overrides both.
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/etc/app/config.yaml", []byte(`
api:
  name: api
  peer_list: ["10.0.0.1:443"]
  sample:
    required_baz: true
`), 0o600)

	configModule := fx.Module("config",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(fsys, "/etc/app/config.yaml"),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider[testconfig.Service, testconfig.ServicePartial]("api")),
	)

	serviceModule := fx.Module("service",
		fx.Provide(func(cfg testconfig.Service) *ServerService {
			return &ServerService{
				Config: cfg,
			}
		}),
	)

	// Step 2: Create and start the App with logging and modules.
	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	app := hjarta.NewApp(
		hjarta.WithLogLevel("error"),
		hjarta.WithEnv(env.Map(map[string]string{"SERVICE_TIMEOUT": "45s"})),
		hjarta.WithModules(configModule, serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	// Step 3: Verify the service has config injected.
	fmt.Printf("Route: %s\n", service.Address())
	fmt.Printf("Timeout: %s\n", service.Config.Timeout)
	fmt.Printf("Workers: %d\n", service.Config.Workers)
	// Output:
	// Route: api -> 10.0.0.1:443
	// Timeout: 45s
	// Workers: 1
}
