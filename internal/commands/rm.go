package commands

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the - command.
type RmCmd struct{}

func (c *RmCmd) Word() string     { return "-" }
func (c *RmCmd) Synopsis() string { return "Remove task <n>" }
func (c *RmCmd) Usage() string    { return "- <n>" }

func (c *RmCmd) Parse(args []string) (Action, error) {
	i, err := parsePosition(c.Word(), args)
	if err != nil {
		return Action{}, err
	}
	return Remove(i), nil
}
