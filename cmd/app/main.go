package main

import (
	"hireflow/internal/app"
	"hireflow/pkg/config"

	_ "hireflow/docs" // Swagger docs
)

// @title           HireFlow API
// @version         1.0
// @description     Internal hiring-approval tracker: staffing requests routed through a role-based approval chain with live notifications.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
