package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"focusdesk/internal/modules/notify/domain"
	notifyout "focusdesk/internal/modules/notify/port/out"
)

type OSNotifier struct {
	appName string
}

func NewOSNotifier(appName string) notifyout.Notifier {
	return &OSNotifier{appName: appName}
}

func (n *OSNotifier) Send(ctx context.Context, notification domain.Notification) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(notification.Body), strconv.Quote(notification.Title))
		cmd = exec.CommandContext(ctx, "osascript", "-e", script)
	case "linux":
		cmd = exec.CommandContext(ctx, "notify-send", "--app-name", n.appName, notification.Title, notification.Body)
	default:
		return fmt.Errorf("desktop notifications are not supported on %s", runtime.GOOS)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("send notification: %w: %s", err, out)
	}
	return nil
}

// Permitted is always true: desktop shells do not gate notifications per app.
func (n *OSNotifier) Permitted(_ context.Context) (bool, error) {
	return true, nil
}
