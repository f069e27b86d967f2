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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/lexivy/data"
	adapterrepo "github.com/eslsoft/lexivy/internal/adapter/repository"
	"github.com/eslsoft/lexivy/internal/infrastructure/config"
	"github.com/eslsoft/lexivy/internal/infrastructure/server"
	"github.com/eslsoft/lexivy/internal/infrastructure/storage"
	"github.com/eslsoft/lexivy/internal/usecase"
)

const progressIdentityKey = "progress.identity"

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect or reset stored user progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the progress summary for an identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, identity, cleanup, err := buildProgress()
		if err != nil {
			return err
		}
		defer cleanup()

		summary, err := progress.Summary(cmd.Context(), identity)
		if err != nil {
			return err
		}

		cmd.Printf("identity:       %s\n", identity)
		cmd.Printf("points:         %d (%s)\n", summary.Points, summary.League.Name)
		cmd.Printf("current streak: %d\n", summary.CurrentDailyStreak)
		cmd.Printf("longest streak: %d\n", summary.LongestDailyStreak)
		cmd.Printf("words practiced: %d\n", summary.WordsPracticed)
		if summary.LastQuizCompletionDate != "" {
			cmd.Printf("last quiz:      %s\n", summary.LastQuizCompletionDate)
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored progress for an identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, identity, cleanup, err := buildProgress()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := progress.Reset(cmd.Context(), identity); err != nil {
			return err
		}
		cmd.Printf("progress reset for %s\n", identity)
		return nil
	},
}

func buildProgress() (usecase.ProgressUsecase, string, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, "", nil, fmt.Errorf("setup logger: %w", err)
	}

	words, err := adapterrepo.NewWordRepository(data.Vocabulary)
	if err != nil {
		return nil, "", nil, fmt.Errorf("load vocabulary: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open storage: %w", err)
	}

	identity := viper.GetString(progressIdentityKey)
	if identity == "" {
		identity = cfg.User.DefaultIdentity
	}

	progress := usecase.NewProgressUsecase(adapterrepo.NewProgressRepository(store), words, logger)
	return progress, identity, func() { store.Close() }, nil
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressShowCmd, progressResetCmd)

	progressCmd.PersistentFlags().String("identity", "", "user identity (default from config)")
	bindFlagToViper(progressIdentityKey, progressCmd.PersistentFlags().Lookup("identity"))
}
