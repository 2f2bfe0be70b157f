package task

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var attachCmd = &cobra.Command{
	Use:   "attach <id> <file>",
	Short: "Attach a file to a task",
	Long:  `Stores a copy of the file inside the task, base64-encoded, so it travels with plan exports.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAttach,
}

func runAttach(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	dir, p, err := loadWorkspacePlan()
	if err != nil {
		return err
	}

	t, ok := p.FindTask(id)
	if !ok {
		return fmt.Errorf("no task with id %d", id)
	}

	name := filepath.Base(args[1])
	t.Attachments = append(t.Attachments, plan.Attachment{
		FileName:    name,
		FileContent: base64.StdEncoding.EncodeToString(data),
		FileType:    fileType(args[1], data),
	})

	if err := saveWithLock(dir, p.UpdateTask(t)); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).TaskUpdated(id); err != nil {
		return err
	}

	fmt.Printf("Attached %s to task %d: %s\n", name, id, t.Name)
	return nil
}

// fileType resolves a MIME type from the extension, sniffing the
// content when the extension is unknown.
func fileType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}
