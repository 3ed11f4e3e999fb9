package root

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

func newProfileCmd() *cobra.Command {
	var name, avatarPath string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the student profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tracker, _, cleanup, err := openTracker(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if name == "" && avatarPath == "" {
				data := tracker.Data()
				out := cmd.OutOrStdout()
				if data.User == nil {
					fmt.Fprintln(out, ui.Muted.Render("sem perfil"))
					return nil
				}
				fmt.Fprintln(out, ui.LabelValue("Nome", data.User.Name))
				if data.User.Avatar != "" {
					fmt.Fprintln(out, ui.LabelValue("Avatar", ui.Muted.Render(fmt.Sprintf("definido (%d bytes)", len(data.User.Avatar)))))
				}
				return nil
			}

			avatar := ""
			if avatarPath != "" {
				avatar, err = encodeAvatar(avatarPath)
				if err != nil {
					return err
				}
			}

			if err := tracker.SetProfile(ctx, name, avatar); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Perfil atualizado"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVar(&avatarPath, "avatar", "", "Path to an avatar image (stored as a data URI)")
	return cmd
}

func encodeAvatar(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", errors.New("avatar must be an image file")
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
