// taskcli is a terminal frontend for the task tracker API. It drives
// the same client SDK and sync engine the browser UI logic is built
// on, which makes it handy for poking at a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mkaraca/task-tracker-api/internal/client"
	"github.com/mkaraca/task-tracker-api/internal/dto"
	"github.com/mkaraca/task-tracker-api/internal/duedate"
	"github.com/mkaraca/task-tracker-api/internal/query"
	"github.com/mkaraca/task-tracker-api/internal/sync"
)

func main() {
	var (
		server     = flag.String("server", "http://localhost:8080", "API base URL")
		search     = flag.String("search", "", "substring filter on title/description")
		status     = flag.String("status", "all", "all|complete|incomplete")
		assignee   = flag.Uint64("assignee", 0, "filter by assignee id")
		unassigned = flag.Bool("unassigned", false, "only unassigned tasks")
		priority   = flag.String("priority", "all", "all|low|medium|high")
		due        = flag.String("due", "all", "all|overdue|today|upcoming")
	)
	flag.Parse()

	filters := query.Filters{
		Search:   *search,
		Status:   query.StatusFilter(*status),
		Priority: query.PriorityFilter(*priority),
		Due:      query.DueFilter(*due),
	}
	if *unassigned {
		filters.Assignee = query.FilterUnassigned()
	} else if *assignee != 0 {
		filters.Assignee = query.FilterAssignee(*assignee)
	}

	engine := sync.NewEngine(
		client.New(*server),
		sync.NewStore(),
		func() query.Filters { return filters },
	)

	ctx := context.Background()
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"list"}
	}

	var err error
	switch args[0] {
	case "list":
		err = list(ctx, engine)
	case "create":
		err = create(ctx, engine, args[1:])
	case "toggle":
		err = withID(args[1:], func(id uint64) error {
			return engine.ToggleComplete(ctx, id)
		})
	case "assign":
		err = assign(ctx, engine, args[1:])
	case "rm":
		err = withID(args[1:], func(id uint64) error {
			return engine.Remove(ctx, id)
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (list|create|toggle|assign|rm)\n", args[0])
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func list(ctx context.Context, engine *sync.Engine) error {
	if err := engine.Reload(ctx); err != nil {
		return err
	}

	today := duedate.Today()
	for _, task := range engine.Tasks() {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		badge := ""
		if s := duedate.Classify(task.DueDate, today); s != duedate.StatusNone {
			badge = fmt.Sprintf(" [%s %s]", task.DueDate, s)
		}
		fmt.Printf("%4d [%s] %-8s %s | %s%s\n",
			task.ID, mark, task.Priority, task.Title, task.AssigneeName, badge)
	}
	return nil
}

func create(ctx context.Context, engine *sync.Engine, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("create needs a title")
	}
	req := dto.CreateTaskRequest{Title: args[0]}
	if len(args) > 1 {
		req.Description = args[1]
	}
	return engine.Create(ctx, req)
}

func assign(ctx context.Context, engine *sync.Engine, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("assign needs a task id and a user id (or \"none\")")
	}
	taskID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad task id %q", args[0])
	}
	if args[1] == "none" {
		return engine.QuickAssign(ctx, taskID, nil)
	}
	userID, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("bad user id %q", args[1])
	}
	return engine.QuickAssign(ctx, taskID, &userID)
}

func withID(args []string, fn func(uint64) error) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad task id %q", args[0])
	}
	return fn(id)
}
