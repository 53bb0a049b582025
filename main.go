package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-rooms/config"
	"ebiten-rooms/generation"
)

var errUsage = errors.New("usage: ebiten-rooms [--seed N] [--radius R] [--dump | --dump-schema]")

// options holds the parsed command line
type options struct {
	seed       uint64
	seedSet    bool
	radius     int
	dump       bool
	dumpSchema bool
}

// parseArgs reads the command line. Flags take their value as the next argument.
func parseArgs(args []string) (options, error) {
	opts := options{radius: generation.DefaultGraphConfig().HorizonRadius}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--seed", "--radius":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value: %w", args[i], errUsage)
			}
			value := args[i+1]
			if args[i] == "--seed" {
				seed, err := strconv.ParseUint(value, 10, 64)
				if err != nil {
					return opts, fmt.Errorf("invalid --seed %q: %w", value, err)
				}
				opts.seed, opts.seedSet = seed, true
			} else {
				radius, err := strconv.Atoi(value)
				if err != nil {
					return opts, fmt.Errorf("invalid --radius %q: %w", value, err)
				}
				if radius < 1 {
					return opts, fmt.Errorf("--radius must be at least 1, got %d: %w", radius, errUsage)
				}
				opts.radius = radius
			}
			i++
		case "--dump":
			opts.dump = true
		case "--dump-schema":
			opts.dumpSchema = true
		default:
			return opts, fmt.Errorf("unknown argument %q: %w", args[i], errUsage)
		}
	}

	if opts.dump && opts.dumpSchema {
		return opts, fmt.Errorf("--dump and --dump-schema are exclusive: %w", errUsage)
	}
	return opts, nil
}

// graphConfig turns the options into generator settings
func (o options) graphConfig() generation.GraphConfig {
	cfg := generation.DefaultGraphConfig()
	cfg.HorizonRadius = o.radius
	return cfg
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if opts.dumpSchema {
		schema, err := generation.SnapshotSchema()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(schema))
		return
	}

	// Set a random seed for room generation
	if !opts.seedSet {
		opts.seed = uint64(time.Now().UnixNano())
	}

	if opts.dump {
		graph := generation.NewRoomGraphWithConfig(opts.seed, opts.graphConfig(), nil, nil)
		data, err := graph.MarshalSnapshot()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(data))
		return
	}

	game := NewGame(opts.seed, opts.graphConfig())

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Ebiten Rooms - seed %d", opts.seed))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
