package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"river-client/internal/config"
	"river-client/internal/controller"
	"river-client/internal/metrics"
	"river-client/internal/model"
	"river-client/internal/transport"
	"river-client/internal/view"
)

func doOrDie(err error) {
	if err != nil {
		log.Fatalf("unable to continue: %+v", err)
	}
}

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	conf, err := config.GetConfig(configPath)
	doOrDie(err)

	logLevel, err := conf.GetLogLevel()
	doOrDie(err)
	log.SetLevel(logLevel)

	go metrics.Serve(conf.MetricsPort)

	client := transport.NewClient(conf.Host, conf.Port)
	renderer := view.NewConsoleRenderer(os.Stdout)
	ctrl := controller.New(client, renderer, conf.PollInterval())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		err := ctrl.Run(ctx)
		log.Infof("poll loop stopped: %v", err)
	}()

	log.Infof("connected to %s:%d, polling every %s", conf.Host, conf.Port, conf.PollInterval())
	fmt.Println("commands: join <name> | remove <name> | cards <n> | start | wager <n> | play <suit> <number> | finish-hand | finish-round | quit")

	readCommands(ctx, ctrl)
}

// readCommands is the thin input surface: each line becomes at most one
// intent. All state handling stays in the controller.
func readCommands(ctx context.Context, ctrl *controller.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		if err := runCommand(ctrl, line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func runCommand(ctrl *controller.Controller, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "join":
		if len(fields) != 2 {
			return fmt.Errorf("usage: join <name>")
		}
		return ctrl.Join(fields[1])
	case "remove":
		if len(fields) != 2 {
			return fmt.Errorf("usage: remove <name>")
		}
		return ctrl.Dispatch(transport.RemovePlayer{Player: fields[1]})
	case "cards":
		count, err := requireInt(fields, "cards <n>")
		if err != nil {
			return err
		}
		return ctrl.Dispatch(transport.SetCardsPerPlayer{Count: count})
	case "start":
		return ctrl.Dispatch(transport.StartRound{})
	case "wager":
		hands, err := requireInt(fields, "wager <n>")
		if err != nil {
			return err
		}
		return ctrl.Dispatch(transport.MakeWager{Hands: hands})
	case "play":
		if len(fields) != 3 {
			return fmt.Errorf("usage: play <suit> <number>")
		}
		card := model.Card{Suit: model.Suit(fields[1]), Number: model.Rank(fields[2])}
		if !card.Suit.Known() || !card.Number.Known() {
			return fmt.Errorf("no such card: %s %s", fields[1], fields[2])
		}
		return ctrl.Dispatch(transport.PlayCard{Card: card})
	case "finish-hand":
		return ctrl.Dispatch(transport.FinishHand{})
	case "finish-round":
		return ctrl.Dispatch(transport.FinishRound{})
	}
	return fmt.Errorf("unknown command %q", fields[0])
}

func requireInt(fields []string, usage string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return value, nil
}
