package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/club-manager/internal/config"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{name: "flag off", cfg: config.Config{UptraceEnabled: false, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}},
		{name: "empty dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ServiceName = "club-manager-api"
			tc.cfg.ServiceVersion = "dev"
			tc.cfg.AppEnv = config.EnvDev

			shutdown, err := InitUptrace(tc.cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv := StartPprofServer(config.Config{PprofEnabled: false}, nil)
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(context.Background(), srv, nil); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	got := pyroscopeConfig(config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "club-manager-api",
		ServiceVersion:   "1.2.3",
		PyroscopeAppName: "club-manager",
	})
	if got.ApplicationName != "club-manager" {
		t.Fatalf("unexpected application name %q", got.ApplicationName)
	}
	if got.Tags["service"] != "club-manager-api" || got.Tags["version"] != "1.2.3" || got.Tags["env"] != config.EnvDev {
		t.Fatalf("unexpected tags %+v", got.Tags)
	}
	if len(got.ProfileTypes) == 0 {
		t.Fatalf("expected profile types")
	}
}
