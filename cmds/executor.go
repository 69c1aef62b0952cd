package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/mulscan/vars"
)

type Executor struct {
	commands   map[string]*Command
	positional func(string) error
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Positional sets the handler for arguments that name no command.
// Without one, such arguments are errors.
func (p *Executor) Positional(fn func(arg string) error) {
	p.positional = fn
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		if name == "--" && p.positional != nil {
			for _, arg := range args {
				if err := p.positional(arg); err != nil {
					return err
				}
			}
			return nil
		}

		command, ok := commands[name]
		if !ok {
			// a mistyped flag is not an input; "--" escapes names starting with '-'
			if p.positional != nil && (name == "-" || !strings.HasPrefix(name, "-")) {
				if err := p.positional(name); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = command.call(args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage(w io.Writer) {
	printUsage(w, p.commands, 0)
}

func printUsage(w io.Writer, commands map[string]*Command, depth int) {
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		names[cmd] = append(names[cmd], name)
	}
	cmds := slices.Collect(maps.Keys(names))
	for _, ns := range names {
		slices.Sort(ns)
	}
	slices.SortFunc(cmds, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})
	indent := strings.Repeat("  ", depth)
	for _, cmd := range cmds {
		fmt.Fprintf(w, "%s%s", indent, strings.Join(names[cmd], " | "))
		if cmd.Description != "" {
			fmt.Fprintf(w, "\t%s", cmd.Description)
		}
		fmt.Fprintln(w)
		if len(cmd.Subs) > 0 {
			printUsage(w, cmd.Subs, depth+1)
		}
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
