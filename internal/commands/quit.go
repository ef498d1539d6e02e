package commands

func init() {
	Register(&QuitCmd{})
}

// QuitCmd implements the q command.
type QuitCmd struct{}

func (c *QuitCmd) Word() string     { return "q" }
func (c *QuitCmd) Synopsis() string { return "Quit" }
func (c *QuitCmd) Usage() string    { return "q" }

func (c *QuitCmd) Parse(args []string) (Action, error) {
	return Quit(), nil
}
