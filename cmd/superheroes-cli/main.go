// superheroes CLI — инструмент командной строки для героев,
// способностей и их связей через HTTP API.
//
// Использование:
//
//	superheroes [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	hero        Управление героями
//	power       Управление способностями
//	hero-power  Связи героев со способностями
//	seed        Демонстрационный набор данных
//	events      Поток событий из RabbitMQ
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/superheroes/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
