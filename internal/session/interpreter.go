package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/profit-calculator/internal/domain"
)

const helpText = `commands:
  amount <number>          set the base amount
  percent <number>         set the profit percentage
  <none|up|nearest> on|off set a rounding switch
  toggle <none|up|nearest> flip a rounding switch
  show                     print inputs, switches and profit
  copy                     copy the profit to the clipboard
  help                     print this help
  quit                     leave
`

// Interpreter drives a Screen from line-oriented text commands.
type Interpreter struct {
	Screen    *Screen
	Clipboard Clipboard
	Out       io.Writer
}

// Run reads commands until EOF or quit. Bad commands are reported to Out and
// do not stop the loop.
func (it *Interpreter) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := it.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(it.Out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one command line. It reports whether the session should end.
func (it *Interpreter) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprint(it.Out, helpText)
		return false, nil
	case "amount", "a":
		it.Screen.SetAmount(strings.Join(args, ""))
	case "percent", "percentage", "p":
		it.Screen.SetPercentage(strings.Join(args, ""))
	case "toggle", "t":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: toggle <none|up|nearest>")
		}
		mode, err := domain.ParseRoundingMode(args[0])
		if err != nil {
			return false, err
		}
		if err := it.Screen.ToggleSwitch(mode); err != nil {
			return false, err
		}
	case "show":
		it.show()
		return false, nil
	case "copy", "c":
		if it.Clipboard == nil {
			return false, ErrClipboardUnavailable
		}
		text, err := it.Screen.Copy(it.Clipboard)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(it.Out, "copied %s\n", text)
		return false, nil
	default:
		if err := it.setSwitch(cmd, args); err != nil {
			return false, err
		}
	}
	fmt.Fprintf(it.Out, "Profit: %s\n", it.Screen.Result().Formatted)
	return false, nil
}

func (it *Interpreter) setSwitch(cmd string, args []string) error {
	mode, err := domain.ParseRoundingMode(cmd)
	if err != nil {
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: %s on|off", cmd)
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return it.Screen.SetSwitch(mode, true)
	case "off":
		return it.Screen.SetSwitch(mode, false)
	default:
		return fmt.Errorf("usage: %s on|off", cmd)
	}
}

func (it *Interpreter) show() {
	amount, pct := it.Screen.Inputs()
	fmt.Fprintf(it.Out, "Amount: %s\n", amount)
	fmt.Fprintf(it.Out, "Percent: %s\n", pct)
	sel := it.Screen.Rounding()
	var parts []string
	for _, mode := range domain.RoundingModes {
		box := "[ ]"
		if sel.IsActive(mode) {
			box = "[x]"
		}
		parts = append(parts, box+" "+mode.String())
	}
	fmt.Fprintln(it.Out, strings.Join(parts, "  "))
	fmt.Fprintf(it.Out, "Profit: %s\n", it.Screen.Result().Formatted)
}
