package commands

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the + command.
type AddCmd struct{}

func (c *AddCmd) Word() string     { return "+" }
func (c *AddCmd) Synopsis() string { return "Add a task" }
func (c *AddCmd) Usage() string    { return "+ <text>" }

// Parse takes the description verbatim from the first argument only.
// Multi-word descriptions are not supported: later tokens are dropped.
func (c *AddCmd) Parse(args []string) (Action, error) {
	if len(args) == 0 {
		return Action{}, &ParseError{Kind: MalformedArgument, Word: c.Word()}
	}
	return Add(args[0]), nil
}
