package main

import (
	"PromptLib/config"
	"PromptLib/dao"
	"PromptLib/models"
	"PromptLib/pkg/database"
	"PromptLib/pkg/imageproc"
	"PromptLib/pkg/log"
	"PromptLib/pkg/server"
	"PromptLib/service"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "prompt library server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:   "migrate",
				Usage:  "create or update prompts/tags/admins tables",
				Action: func(ctx *cli.Context) error { return migrate(cfg) },
			},
			{
				Name:  "create-admin",
				Usage: "create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
				},
				Action: func(ctx *cli.Context) error { return createAdmin(ctx, cfg) },
			},
			{
				Name:      "analyze",
				Usage:     "translate and summarize a prompt through the analyze endpoint",
				ArgsUsage: "<text>",
				Action:    func(ctx *cli.Context) error { return analyze(ctx, cfg) },
			},
			{
				Name:      "preprocess",
				Usage:     "resize and compress an image the way uploads are processed",
				ArgsUsage: "<image>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the jpeg to this path"},
				},
				Action: preprocess,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to run command", zap.Error(err))
	}
}

func migrate(cfg *config.Config) error {
	db := database.NewDB(cfg)
	if db == nil {
		return dao.ErrBackendUnavailable
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	log.L.Info("migrate success")
	return nil
}

func createAdmin(ctx *cli.Context, cfg *config.Config) error {
	db := database.NewDB(cfg)
	if db == nil {
		return dao.ErrBackendUnavailable
	}
	auth := &service.AuthService{Jwt: cfg.Jwt, Admins: dao.NewAdminDAO(db)}
	admin, err := auth.CreateAdmin(ctx.Context, ctx.String("email"), ctx.String("password"))
	if err != nil {
		return err
	}
	log.L.Info("admin created", zap.Int64("id", admin.ID), zap.String("email", admin.Email))
	return nil
}

func analyze(ctx *cli.Context, cfg *config.Config) error {
	if ctx.NArg() == 0 {
		return errors.New("missing text")
	}
	result, err := service.NewAnalyzerClient(cfg).Analyze(ctx.Context, ctx.Args().First())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func preprocess(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("missing image path")
	}
	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := imageproc.Process(f)
	if err != nil {
		return err
	}
	if out := ctx.String("out"); out != "" {
		if err := os.WriteFile(out, res.Payload, 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("aspect_ratio=%s width=%d height=%d bytes=%d\n", res.AspectRatio, res.Width, res.Height, len(res.Payload))
	return nil
}
