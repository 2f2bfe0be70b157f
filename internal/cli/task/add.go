package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbickford/agplan/internal/plan"
)

var (
	addResponsible string
	addStartDate   string
	addDueDate     string
	addPriority    string
	addComments    string
	addBaseline    bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a task to the plan",
	Long:  `Adds a task, placing it in the period whose reference month matches the due date. Use --baseline to add it to the baseline checklist instead of the custom-task list.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addResponsible, "responsible", "Program Chairman", "Responsible party")
	addCmd.Flags().StringVar(&addStartDate, "start", "", "Start date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addPriority, "priority", plan.PriorityMedium, "Priority: High, Medium or Low")
	addCmd.Flags().StringVar(&addComments, "comments", "", "Free-form comments")
	addCmd.Flags().BoolVar(&addBaseline, "baseline", false, "Add to the baseline checklist")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := validatePriority(addPriority); err != nil {
		return err
	}

	dir, p, err := loadWorkspacePlan()
	if err != nil {
		return err
	}

	category := plan.CategoryGeneral
	if addBaseline {
		category = plan.CategoryBaseline
	}

	t := plan.Task{
		Name:        args[0],
		Responsible: addResponsible,
		StartDate:   addStartDate,
		DueDate:     addDueDate,
		Status:      plan.StatusNotStarted,
		Priority:    addPriority,
		Comments:    addComments,
	}

	id := p.NextID()
	updated := p.AddTask(t, category)
	if err := saveWithLock(dir, updated); err != nil {
		return err
	}
	if err := plan.NewHistoryLogger(dir).TaskAdded(id, args[0], category); err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", id, args[0])
	return nil
}
