package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ishantsinghrawat/reviews-stg/internal/cli"
	"github.com/ishantsinghrawat/reviews-stg/internal/logging"
)

func main() {
	log.Logger = logging.New(os.Getenv("APP_ENV"))
	os.Exit(cli.Run())
}
