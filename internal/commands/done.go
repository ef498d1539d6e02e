package commands

func init() {
	Register(&DoneCmd{})
	Register(&ToDoCmd{})
}

// DoneCmd implements the x command.
type DoneCmd struct{}

func (c *DoneCmd) Word() string     { return "x" }
func (c *DoneCmd) Synopsis() string { return "Mark task <n> done" }
func (c *DoneCmd) Usage() string    { return "x <n>" }

func (c *DoneCmd) Parse(args []string) (Action, error) {
	i, err := parsePosition(c.Word(), args)
	if err != nil {
		return Action{}, err
	}
	return SetDone(i), nil
}

// ToDoCmd implements the o command, the inverse of DoneCmd.
type ToDoCmd struct{}

func (c *ToDoCmd) Word() string     { return "o" }
func (c *ToDoCmd) Synopsis() string { return "Mark task <n> pending" }
func (c *ToDoCmd) Usage() string    { return "o <n>" }

func (c *ToDoCmd) Parse(args []string) (Action, error) {
	i, err := parsePosition(c.Word(), args)
	if err != nil {
		return Action{}, err
	}
	return SetToDo(i), nil
}
