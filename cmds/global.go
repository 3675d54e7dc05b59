package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}

func Args() []string {
	return GlobalExecutor.Args()
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
