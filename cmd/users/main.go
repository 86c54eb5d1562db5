package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-travel-board/internal/app"
	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := app.Run(context.Background(), config.ServiceUsers, os.Args[1:], info); err != nil {
		fmt.Fprintf(os.Stderr, "users service: %v\n", err)
		os.Exit(1)
	}
}
