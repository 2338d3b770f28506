package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// confirmIfExists checks that a file exists, and if so asks the user to
// confirm overwriting it. It returns true if the file doesn't exist, or
// if the user confirmed. If ok is false or err is non-nil, the caller
// should abort.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from stdin,
// defaulting to no on a bare ENTER.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := string([]byte(input)[0])[0]
		if c == 10 {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}
