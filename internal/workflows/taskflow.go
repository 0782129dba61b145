package workflows

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	flow "github.com/noneback/go-taskflow"
)

// TaskFlow wraps go-taskflow's TaskFlow with a linear chain of fallible tasks.
// Once a task fails every later task is skipped.
type TaskFlow struct {
	*flow.TaskFlow

	ctx  context.Context
	last *flow.Task

	mu  sync.Mutex
	err error
}

// NewTaskFlow creates a new custom TaskFlow
func NewTaskFlow(ctx context.Context, name string) *TaskFlow {
	return &TaskFlow{
		TaskFlow: flow.NewTaskFlow(name),
		ctx:      ctx,
	}
}

// Then adds a task that runs after every task added before it
func (tf *TaskFlow) Then(name string, fn func() error) *flow.Task {
	task := tf.NewTask(name, func() {
		if tf.Err() != nil {
			log.Debug("Skipping task", "task", name)
			return
		}

		if err := tf.ctx.Err(); err != nil {
			tf.fail(err)
			return
		}

		if err := fn(); err != nil {
			log.Error("Task failed", "task", name, "error", err)
			tf.fail(err)
		}
	})

	if tf.last != nil {
		tf.last.Precede(task)
	}
	tf.last = task

	return task
}

// Run executes the flow and returns the first task error
func (tf *TaskFlow) Run(workers uint) error {
	executor := flow.NewExecutor(workers)
	executor.Run(tf.TaskFlow).Wait()

	return tf.Err()
}

// Err returns the first task error, if any
func (tf *TaskFlow) Err() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.err
}

func (tf *TaskFlow) fail(err error) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if tf.err == nil {
		tf.err = err
	}
}
