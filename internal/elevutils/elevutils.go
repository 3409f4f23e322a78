package elevutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return strings.TrimSpace(gitHash)
}

type CmdArgs struct {
	ConfigPath       string
	EnvPath          string
	Identifier       string
	BroadcastAddress string
	LineConsole      bool
	Help             bool
	Version          bool
}

// ParseCmdArgs parses args (without the programme name). Flags left unset
// keep their zero value so that config files can fill them in.
func ParseCmdArgs(name string, args []string, output io.Writer) (CmdArgs, error) {
	var cmdArgs CmdArgs

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.BoolVar(&cmdArgs.Help, "help", false, "Show Help Window")
	flags.BoolVar(&cmdArgs.Version, "version", false, "Show Version")
	flags.StringVar(&cmdArgs.ConfigPath, "config", "elevator.yaml", "Path to the YAML config file. Missing file means defaults")
	flags.StringVar(&cmdArgs.EnvPath, "env", ".env", "Path to a .env file overriding the config file")
	flags.StringVar(&cmdArgs.Identifier, "id", "", "Set the identifier of the elevator. Defaults to random string")
	flags.StringVar(&cmdArgs.BroadcastAddress, "broadcast", "", "UDP address status packets are sent to")
	flags.BoolVar(&cmdArgs.LineConsole, "lines", false, "Read commands line by line instead of single key presses")

	if err := flags.Parse(args); err != nil {
		return cmdArgs, err
	}
	if flags.NArg() > 0 {
		return cmdArgs, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return cmdArgs, nil
}

func ProcessCmdArgs() CmdArgs {
	cmdArgs, err := ParseCmdArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	if cmdArgs.Version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if cmdArgs.Help {
		fmt.Println("Usage: ./elevator [OPTIONS]")
		fmt.Println("Elevator Simulator")
		fmt.Println()
		fmt.Println("Options:")
		ParseCmdArgs(os.Args[0], []string{"-h"}, os.Stdout)
		fmt.Println()
		fmt.Println("Console keys:")
		fmt.Println("	s  start the elevator")
		fmt.Println("	r  issue a random request")
		fmt.Println("	x  stop the elevator")
		fmt.Println("	p  print the status report")
		fmt.Println("	q  quit")
		os.Exit(0)
	}

	return cmdArgs
}
