// Command coldcore is a line-oriented driver for the search core,
// directly modeled on the teacher pack's zurichess/main.go: parse
// flags, set up stdlib log, then read and dispatch one line at a
// time from stdin until EOF or "quit".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

var (
	buildVersion = "(devel)"

	seed = flag.Int64("seed", 1, "seed for the demo 7-bag generator")
)

func main() {
	fmt.Printf("coldcore %v, build with %v, running on %v\n",
		buildVersion, runtime.Version(), runtime.GOARCH)

	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	d := newDriver(*seed)
	defer d.Close()

	bio := bufio.NewReader(os.Stdin)
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			break
		}
		if err := d.Execute(string(line)); err != nil {
			if err == errQuit {
				break
			}
			log.Println("for line:", string(line))
			log.Println("error:", err)
		}
	}
}
