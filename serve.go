package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/tweentx/api"
	"github.com/matt-g-everett/tweentx/logging"
	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/transition"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config     stream.Config
	Logger     *slog.Logger
	Client     mqtt.Client
	Transition *transition.Transition
	Streamer   *stream.Streamer
	Controller *stream.Controller
	Api        *api.Server
}

func serveCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream the transition to the LED strip and accept commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "YAML config file.")
	return cmd
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Logger.Info("connected", "broker", a.Config.Mqtt.URL)
	if err := a.Controller.Subscribe(); err != nil {
		a.Logger.Error("subscribe failed", "error", err)
	}
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	a.Logger.Warn("connection lost", "error", err)
}

func (a *app) newClient() mqtt.Client {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	return mqtt.NewClient(options)
}

func (a *app) connect() error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	return nil
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}

	a := new(app)
	a.Config = cfg
	a.Logger = newLogger(cfg.Log.Level, cfg.Log.Format)
	mqtt.ERROR = logging.Bridge(a.Logger, "mqtt", slog.LevelError)
	mqtt.CRITICAL = logging.Bridge(a.Logger, "mqtt", slog.LevelError)
	mqtt.WARN = logging.Bridge(a.Logger, "mqtt", slog.LevelWarn)
	a.Logger.Debug("config loaded", "path", configPath, "pixels", cfg.Strip.Pixels, "animation", cfg.DefaultAnimation())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := stream.NewRenderer(cfg)
	if err != nil {
		return err
	}

	a.Client = a.newClient()
	a.Streamer = stream.NewStreamer(cfg, a.Client, renderer, a.Logger)
	a.Transition = transition.New(ctx, cfg.Phases(),
		transition.WithRedraw(a.Streamer.Redraw),
		transition.WithLogger(a.Logger),
		transition.WithTickInterval(cfg.Transition.Tick),
	)
	defer a.Transition.Close()

	a.Controller = stream.NewController(cfg, a.Client, a.Transition, a.Logger)
	a.Api = api.NewServer(a.Transition, cfg.DefaultAnimation(), a.Logger)
	if cfg.HTTP.Static != "" {
		a.Api.ServeStatic(cfg.HTTP.Static)
	}

	if err := a.connect(); err != nil {
		return err
	}
	defer a.Client.Disconnect(250)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Streamer.Run(ctx, a.Transition) })
	g.Go(func() error { return a.Api.ListenAndServe(ctx, cfg.HTTP.Addr) })
	return g.Wait()
}
