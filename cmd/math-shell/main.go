// Command math-shell is an interactive calculator. With arguments, each
// argument is evaluated as one expression and the shell exits; otherwise it
// reads expressions and commands from stdin until exit.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	mathshell "github.com/NOname-awa/math-shell"
)

func main() {
	log.SetFlags(0)
	var (
		modename string
		given    [][2]string
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&modename, "mode", "degree", "initial angle mode (degree or radian)")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.Parse()

	mode, err := mathshell.ParseAngleMode(modename)
	if err != nil {
		log.Fatal(err)
	}
	sess := mathshell.NewSession()
	sess.SetMode(mode)
	for _, d := range given {
		r, err := mathshell.EvalString(sess, d[1])
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		sess.Set(d[0], r)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			r, err := mathshell.EvalString(sess, arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, format(err))
				os.Exit(1)
			}
			fmt.Println(r)
			sess.Set("ans", r)
		}
		return
	}

	repl(sess)
}

func repl(sess *mathshell.Session) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	in := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if dispatch(sess, line) {
			return
		}
	}
	if err := in.Err(); err != nil {
		log.Fatal(err)
	}
}

// dispatch handles one input line, either a command verb or an expression.
// It reports whether the shell should exit.
func dispatch(sess *mathshell.Session, line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "exit", "quit":
		return true
	case "clear":
		fmt.Print("\x1b[2J\x1b[H")
		return false
	case "mode":
		fmt.Println(sess.Mode())
		return false
	case "vars":
		for _, name := range sess.Vars() {
			v, _ := sess.Lookup(name)
			fmt.Printf("%s = %s\n", name, v)
		}
		return false
	case "set":
		mode, err := mathshell.ParseAngleMode(strings.TrimSpace(rest))
		if err != nil {
			fmt.Println(format(err))
			return false
		}
		sess.SetMode(mode)
		return false
	case "var":
		name, expr, ok := strings.Cut(rest, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			fmt.Println("Error: variable definitions look like: var <name> = <value>")
			return false
		}
		r, err := mathshell.EvalString(sess, strings.TrimSpace(expr))
		if err != nil {
			fmt.Println(format(err))
			return false
		}
		sess.Set(name, r)
		return false
	}
	r, err := mathshell.EvalString(sess, line)
	if err != nil {
		fmt.Println(format(err))
		return false
	}
	fmt.Println(r)
	sess.Set("ans", r)
	return false
}

// format renders an error for display. Syntax errors already carry their own
// prefix; everything else gets the generic one.
func format(err error) string {
	var se *mathshell.SyntaxError
	if errors.As(err, &se) {
		return err.Error()
	}
	return "Error: " + err.Error()
}
