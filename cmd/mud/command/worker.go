package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mud-survival/internal/commands"
	"github.com/pixil98/go-mud-survival/internal/driver"
	"github.com/pixil98/go-mud-survival/internal/game"
	"github.com/pixil98/go-mud-survival/internal/messaging"
	"github.com/pixil98/go-mud-survival/internal/scheduler"
	"github.com/pixil98/go-mud-survival/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Open asset stores
	stores, err := cfg.Storage.BuildStores()
	if err != nil {
		return nil, fmt.Errorf("opening stores: %w", err)
	}

	// Message bus and publisher
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	pub := messaging.NewNatsPublisher(natsServer, cfg.World.WrapWidth)

	// Game clock
	sched := scheduler.New()

	// Build the world
	metabolismInterval, err := cfg.World.metabolismInterval()
	if err != nil {
		return nil, fmt.Errorf("parsing metabolism_interval: %w", err)
	}
	world, err := game.NewWorldState(
		stores.Rooms,
		stores.Items,
		stores.Characters,
		pub,
		sched,
		storage.Identifier(cfg.World.DefaultRoom),
		metabolismInterval,
	)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	pub.SetRoomLocator(world)

	// Compile the command table, seeding the stock commands on first run
	if err := seedDefaultCommands(stores.Commands); err != nil {
		return nil, fmt.Errorf("seeding commands: %w", err)
	}
	cmdHandler := commands.NewHandler(stores.Commands, world, pub)
	if err := cmdHandler.CompileAll(); err != nil {
		return nil, fmt.Errorf("compiling commands: %w", err)
	}
	world.SetCmdSetSwapper(cmdHandler)

	// Setup the mud driver
	var driverOpts []driver.MudDriverOpt
	tick, err := cfg.tickLength()
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if tick > 0 {
		driverOpts = append(driverOpts, driver.WithTickLength(tick))
	}
	mudDriver := driver.NewMudDriver([]driver.Manager{sched}, driverOpts...)

	return service.WorkerList{
		"nats":   natsServer,
		"driver": mudDriver,
	}, nil
}

// seedDefaultCommands writes the stock command table into an empty store so
// a fresh install has a playable verb set.
func seedDefaultCommands(store storage.Storer[*commands.Command]) error {
	if len(store.GetAll()) > 0 {
		return nil
	}

	defaults := commands.DefaultCommands()
	for id, cmd := range defaults {
		if err := store.Save(id, cmd); err != nil {
			return fmt.Errorf("saving command %q: %w", id, err)
		}
	}
	slog.Info("seeded default command table", "count", len(defaults))
	return nil
}
