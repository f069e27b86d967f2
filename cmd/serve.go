/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/lexivy/data"
	"github.com/eslsoft/lexivy/internal/adapter/llm"
	adapterrepo "github.com/eslsoft/lexivy/internal/adapter/repository"
	"github.com/eslsoft/lexivy/internal/adapter/rest"
	"github.com/eslsoft/lexivy/internal/infrastructure/config"
	"github.com/eslsoft/lexivy/internal/infrastructure/server"
	"github.com/eslsoft/lexivy/internal/infrastructure/storage"
	"github.com/eslsoft/lexivy/internal/usecase"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the vocabulary quiz HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := server.NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("setup logger: %w", err)
		}

		raw := data.Vocabulary
		if cfg.Dataset.Path != "" {
			raw, err = os.ReadFile(cfg.Dataset.Path)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
		}
		words, err := adapterrepo.NewWordRepository(raw)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}

		store, err := storage.New(cfg)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer store.Close()

		progressRepo := adapterrepo.NewProgressRepository(store)
		progress := usecase.NewProgressUsecase(progressRepo, words, logger)
		quiz := usecase.NewQuizUsecase(words, progress)
		assist := usecase.NewAssistUsecase(words, progress, llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.Timeout))

		identity := cfg.User.DefaultIdentity
		srv := server.New(cfg, logger,
			rest.NewWordHandler(words),
			rest.NewQuizHandler(quiz, identity),
			rest.NewProgressHandler(progress, identity),
			rest.NewAssistHandler(assist, identity),
		)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Infof("received signal: %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
