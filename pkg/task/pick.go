package task

import "fmt"

// Pick returns the task at index, counted from zero in list order.
func Pick(tasks []Task, index int) (Task, error) {
	if len(tasks) == 0 {
		return Task{}, ErrNoTasks
	}
	if index < 0 || index >= len(tasks) {
		return Task{}, fmt.Errorf("%w: %d (list has %d tasks)", ErrTaskIndexOutOfRange, index, len(tasks))
	}
	return tasks[index], nil
}
