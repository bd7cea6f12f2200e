// Menu command runs the interactive loop: numbered operations, a
// currently selected project, and prompt-driven input. Operation
// failures are printed and the loop keeps running; a blank selection
// exits.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/workbench/pkg/types"
)

var menuOperations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select a project",
	"4) Update project details",
	"5) Delete a project",
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive project menu",
	Long: `Menu starts an interactive session. Pick an operation by number;
press Enter on an empty line to quit.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	sess := &menuSession{in: bufio.NewReader(cmd.InOrStdin())}
	return sess.run()
}

// menuSession holds the reader and the currently selected project.
type menuSession struct {
	in      *bufio.Reader
	current *types.Project
}

func (m *menuSession) run() error {
	for {
		m.printOperations()

		selection, ok, err := m.promptInt("\nEnter a menu selection")
		if err != nil {
			fmt.Printf("\nError: %v Try again.\n", err)
			continue
		}
		if !ok {
			fmt.Println("Exiting the menu...")
			return nil
		}

		var opErr error
		switch selection {
		case 1:
			opErr = m.createProject()
		case 2:
			m.listProjects()
		case 3:
			opErr = m.selectProject()
		case 4:
			opErr = m.updateProjectDetails()
		case 5:
			opErr = m.deleteProject()
		default:
			fmt.Printf("\n%d is not valid. Try again.\n", selection)
		}

		// Failures are never fatal to the session.
		if opErr != nil {
			fmt.Printf("\nError: %v Try again.\n", opErr)
		}
	}
}

func (m *menuSession) printOperations() {
	fmt.Println("\nThese are the available selections. Press Enter to quit:")
	for _, op := range menuOperations {
		fmt.Println("   " + op)
	}

	if m.current == nil {
		fmt.Println("\nYou are not working with a project.")
	} else {
		fmt.Println("\nYou are working with project: " + m.current.String())
	}
}

func (m *menuSession) createProject() error {
	name, ok, err := m.promptString("Enter the project name")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("project name must not be blank")
	}
	estimated, _, err := m.promptDecimal("Enter the estimated hours")
	if err != nil {
		return err
	}
	actual, _, err := m.promptDecimal("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, _, err := m.promptInt("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes, _, err := m.promptString("Enter the project notes")
	if err != nil {
		return err
	}

	created, err := projects.Add(types.Project{
		Name:           name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	fmt.Println("You added this project:\n" + created.String())
	return nil
}

func (m *menuSession) listProjects() {
	summaries, err := projects.List()
	if err != nil {
		fmt.Printf("\nError: %v Try again.\n", err)
		return
	}

	fmt.Println("\nProjects:")
	for _, s := range summaries {
		fmt.Printf("   %d: %s\n", s.ID, s.Name)
	}
}

func (m *menuSession) selectProject() error {
	m.listProjects()

	id, ok, err := m.promptInt("Enter a project ID to select a project")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	selected, err := projects.GetByID(int64(id))
	if err != nil {
		return err
	}
	m.current = &selected
	return nil
}

func (m *menuSession) updateProjectDetails() error {
	if m.current == nil {
		fmt.Println("\nPlease select a project.")
		return nil
	}

	// Blank input keeps the current value.
	name, ok, err := m.promptString(fmt.Sprintf("Enter the project name (%s)", m.current.Name))
	if err != nil {
		return err
	}
	if !ok {
		name = m.current.Name
	}

	estimated, ok, err := m.promptDecimal(fmt.Sprintf("Enter the estimated hours (%s)", m.current.EstimatedHours))
	if err != nil {
		return err
	}
	if !ok {
		estimated = m.current.EstimatedHours
	}

	actual, ok, err := m.promptDecimal(fmt.Sprintf("Enter the actual hours (%s)", m.current.ActualHours))
	if err != nil {
		return err
	}
	if !ok {
		actual = m.current.ActualHours
	}

	difficulty, ok, err := m.promptInt(fmt.Sprintf("Enter the project difficulty (1-5) (%d)", m.current.Difficulty))
	if err != nil {
		return err
	}
	if !ok {
		difficulty = m.current.Difficulty
	}

	notes, ok, err := m.promptString(fmt.Sprintf("Enter the project notes (%s)", m.current.Notes))
	if err != nil {
		return err
	}
	if !ok {
		notes = m.current.Notes
	}

	err = projects.Update(types.Project{
		ID:             m.current.ID,
		Name:           name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	refreshed, err := projects.GetByID(m.current.ID)
	if err != nil {
		return err
	}
	m.current = &refreshed
	return nil
}

func (m *menuSession) deleteProject() error {
	m.listProjects()

	id, ok, err := m.promptInt("Enter the ID of the project to delete")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := projects.Delete(int64(id)); err != nil {
		return err
	}
	fmt.Printf("Project %d was successfully deleted.\n", id)

	if m.current != nil && m.current.ID == int64(id) {
		m.current = nil
	}
	return nil
}

// promptString prints the prompt and reads one line. ok is false when
// the input was blank (or the stream ended).
func (m *menuSession) promptString(prompt string) (value string, ok bool, err error) {
	fmt.Print(prompt + ": ")

	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// promptInt reads an integer. Blank input returns ok=false; non-numeric
// input is a wrapped ErrInvalidNumber.
func (m *menuSession) promptInt(prompt string) (int, bool, error) {
	line, ok, err := m.promptString(prompt)
	if err != nil || !ok {
		return 0, ok, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false, fmt.Errorf("%q: %w", line, types.ErrInvalidNumber)
	}
	return n, true, nil
}

// promptDecimal reads a fixed two-decimal value, same blank convention
// as promptInt.
func (m *menuSession) promptDecimal(prompt string) (types.Decimal, bool, error) {
	line, ok, err := m.promptString(prompt)
	if err != nil || !ok {
		return 0, ok, err
	}

	d, err := types.ParseDecimal(line)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}
