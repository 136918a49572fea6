// Package nested builds command-line tools from a tree of categories and commands.
//
// A [Category] groups named children and resolves which one was invoked; a [Command] is a leaf
// that validates its flags and positional parameters before calling its handler. Positional
// parameters are declared with a small grammar of required <name> and optional [name] tokens:
//
//	app := nested.NewApp(nil).
//		Command(nested.NewCategory("widgets", "Manage widgets", nil).
//			Command(nested.NewCommand("create", "Create a widget", &nested.Options{
//				Params: "<name> [color]",
//				Handler: func(ctx context.Context, s *nested.State) error {
//					fmt.Fprintln(s.Stdout, s.Param("name"))
//					return nil
//				},
//			})))
//	err := nested.RunAndWait(context.Background(), app, os.Args[1:], nil)
//
// Every failure, whether from validation or from a handler, is reported once per run: the help
// screen of the level that failed followed by the error message.
package nested
