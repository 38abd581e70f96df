package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/avasiliev/lockbox/vault"
)

// RunCommands is the plain line-based loop used with -plain, for terminals
// where the TUI is unwanted. The caller has already unlocked the vault;
// password is kept for explicit saves and wiped by the caller.
func RunCommands(v *vault.Vault, password []byte) {
	reader := bufio.NewReader(os.Stdin)
	var idMap map[int]string

	for {
		fmt.Println("\nCommands: a=add, l=list, s N=show, c N=copy, e N=edit, d N=delete, g=genpass, q=quit")
		fmt.Print("> ")

		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "a":
			handleAdd(v, password, reader)
			idMap = nil
		case "l":
			idMap = handleList(v)
		case "g":
			handleGenerate(reader)
		case "s", "c", "d", "e":
			if len(parts) < 2 {
				fmt.Println("Specify item number")
				continue
			}
			var num int
			fmt.Sscanf(parts[1], "%d", &num)
			id, ok := idMap[num]
			if !ok {
				fmt.Println("Invalid item number (run 'l' first)")
				continue
			}
			switch cmd {
			case "s":
				handleShow(v, id)
			case "c":
				handleCopy(v, id)
			case "d":
				handleDelete(v, password, id)
				idMap = nil
			case "e":
				handleEdit(v, password, id, reader)
			}
		case "q":
			fmt.Println("Exiting.")
			return
		default:
			fmt.Println("Unknown command")
		}
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	s, _ := reader.ReadString('\n')
	return strings.TrimSpace(s)
}

func handleAdd(v *vault.Vault, password []byte, reader *bufio.Reader) {
	e := vault.Entry{ID: uuid.NewString()}

	e.Title = readLine(reader, "Title: ")
	e.Username = readLine(reader, "Username: ")
	e.Secret = ReadPasswordMasked("Password: ")
	e.URL = readLine(reader, "URL: ")
	e.Notes = readLine(reader, "Notes: ")

	v.Add(e)
	if err := v.Save(password); err != nil {
		fmt.Println("Error saving vault:", err)
	} else {
		fmt.Println("Entry added!")
	}
}

func handleList(v *vault.Vault) map[int]string {
	entries := v.List()
	fmt.Println("Vault entries:")
	idMap := make(map[int]string)
	for i, e := range entries {
		num := i + 1
		idMap[num] = e.ID
		fmt.Printf("%d) %s | %s | %s\n", num, e.Title, e.Username, e.URL)
	}
	return idMap
}

func handleShow(v *vault.Vault, id string) {
	e := v.Get(id)
	if e == nil {
		fmt.Println("Entry not found")
		return
	}
	fmt.Printf("Title: %s\nUsername: %s\nPassword: %s\nURL: %s\nNotes: %s\n",
		e.Title, e.Username, string(e.Secret), e.URL, e.Notes)
}

func handleCopy(v *vault.Vault, id string) {
	e := v.Get(id)
	if e == nil {
		fmt.Println("Entry not found")
		return
	}
	if err := clipboard.WriteAll(string(e.Secret)); err != nil {
		fmt.Println("Clipboard error:", err)
		return
	}
	fmt.Println("Password copied to clipboard. Clearing in 30 seconds...")
	time.AfterFunc(30*time.Second, func() {
		clipboard.WriteAll("")
	})
}

func handleDelete(v *vault.Vault, password []byte, id string) {
	v.Delete(id)
	if err := v.Save(password); err != nil {
		fmt.Println("Error saving vault:", err)
	} else {
		fmt.Println("Entry deleted!")
	}
}

// handleEdit rewrites an entry field by field; empty input keeps the
// current value.
func handleEdit(v *vault.Vault, password []byte, id string, reader *bufio.Reader) {
	e := v.Get(id)
	if e == nil {
		fmt.Println("Entry not found")
		return
	}

	if s := readLine(reader, fmt.Sprintf("Title [%s]: ", e.Title)); s != "" {
		e.Title = s
	}
	if s := readLine(reader, fmt.Sprintf("Username [%s]: ", e.Username)); s != "" {
		e.Username = s
	}
	if s := ReadPasswordMasked("Password [unchanged]: "); len(s) > 0 {
		vault.Zero(e.Secret)
		e.Secret = s
	}
	if s := readLine(reader, fmt.Sprintf("URL [%s]: ", e.URL)); s != "" {
		e.URL = s
	}
	if s := readLine(reader, fmt.Sprintf("Notes [%s]: ", e.Notes)); s != "" {
		e.Notes = s
	}

	if err := v.Save(password); err != nil {
		fmt.Println("Error saving vault:", err)
	} else {
		fmt.Println("Entry updated!")
	}
}

func handleGenerate(reader *bufio.Reader) {
	length := 20
	if s := readLine(reader, "Length [20]: "); s != "" {
		fmt.Sscanf(s, "%d", &length)
	}
	yes := func(prompt string) bool {
		s := readLine(reader, prompt)
		return s == "" || strings.HasPrefix(strings.ToLower(s), "y")
	}
	upper := yes("Uppercase? [Y/n]: ")
	lower := yes("Lowercase? [Y/n]: ")
	digits := yes("Numbers? [Y/n]: ")
	symbols := yes("Symbols? [Y/n]: ")

	pw, err := vault.GeneratePassword(length, upper, lower, digits, symbols)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Generated:", pw)
}
