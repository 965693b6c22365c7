package wizard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/creditpilot/credit-wizard/pkg/estimator"
	"github.com/creditpilot/credit-wizard/pkg/model"
	"github.com/creditpilot/credit-wizard/pkg/store"
)

// Step is the wizard's position in the linear flow. Processing is the
// transient state while an agent call is in flight.
type Step int

const (
	StepIdea Step = iota
	StepProcessing
	StepUnit
	StepCount
	StepResults
)

// Model is the wizard state machine. One instance per run; all mutation
// happens on the bubbletea event loop.
type Model struct {
	est     *estimator.Estimator
	store   *store.Store
	timeout time.Duration

	step     Step
	prevStep Step

	ideaInput  textinput.Model
	unitInput  textinput.Model
	countInput textinput.Model

	scenario *model.ScenarioData
	calc     *model.CreditCalculation

	showLightDetails bool
	showHeavyDetails bool
	showComparison   bool

	errMsg string

	// generation tags in-flight agent calls so a stale result arriving
	// after a reset is dropped instead of overwriting fresh state.
	generation int

	spin     spinner.Model
	keys     keyMap
	quitting bool
}

type scenarioResultMsg struct {
	gen  int
	data *model.ScenarioData
	err  error
}

type calcResultMsg struct {
	gen  int
	calc *model.CreditCalculation
	err  error
}

func New(est *estimator.Estimator, st *store.Store, timeout time.Duration, fresh bool) Model {
	idea := textinput.New()
	idea.Placeholder = "e.g. AI email responder for a support inbox"
	idea.CharLimit = 500
	idea.Width = 60
	idea.Focus()

	unit := textinput.New()
	unit.Placeholder = "e.g. one support email"
	unit.CharLimit = 200
	unit.Width = 60

	count := textinput.New()
	count.Placeholder = "e.g. 10000"
	count.CharLimit = 12
	count.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		est:        est,
		store:      st,
		timeout:    timeout,
		step:       StepIdea,
		ideaInput:  idea,
		unitInput:  unit,
		countInput: count,
		spin:       sp,
		keys:       defaultKeyMap(),
	}

	if !fresh && st != nil {
		if data := st.LoadFormData(); data != nil {
			m.ideaInput.SetValue(data.BusinessIdea)
			m.unitInput.SetValue(data.UnitOfWork)
			m.countInput.SetValue(data.MonthlyCount)
		}
		// A surviving calculation rehydrates straight into results.
		if calc := st.LoadCalculation(); calc != nil {
			m.calc = calc
			m.step = StepResults
			m.ideaInput.Blur()
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// CurrentStep reports the wizard's position in the flow.
func (m Model) CurrentStep() Step { return m.step }

// Calculation returns the stored result record, nil before the results step.
func (m Model) Calculation() *model.CreditCalculation { return m.calc }

// Err returns the current user-facing error message.
func (m Model) Err() string { return m.errMsg }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.step != StepProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scenarioResultMsg:
		if msg.gen != m.generation || m.step != StepProcessing {
			// Stale response from before a reset; drop it.
			return m, nil
		}
		if msg.err != nil {
			m.step = m.prevStep
			m.errMsg = "Could not contact the scenario agent. Please try again."
			m.ideaInput.Focus()
			return m, nil
		}
		m.scenario = msg.data
		m.errMsg = ""
		m.step = StepUnit
		m.ideaInput.Blur()
		m.unitInput.Focus()
		return m, textinput.Blink

	case calcResultMsg:
		if msg.gen != m.generation || m.step != StepProcessing {
			return m, nil
		}
		if msg.err != nil {
			m.step = m.prevStep
			m.errMsg = "Could not contact the calculation agent. Please try again."
			m.countInput.Focus()
			return m, nil
		}
		m.calc = msg.calc
		m.errMsg = ""
		m.step = StepResults
		m.countInput.Blur()
		m.persist()
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case StepIdea:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitIdea()
		}
	case StepUnit:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitUnit()
		}
	case StepCount:
		if key.Matches(msg, m.keys.Submit) {
			return m.submitCount()
		}
	case StepProcessing:
		// Inputs are disabled while a call is in flight.
		return m, nil
	case StepResults:
		switch {
		case key.Matches(msg, m.keys.Light):
			m.showLightDetails = !m.showLightDetails
		case key.Matches(msg, m.keys.Heavy):
			m.showHeavyDetails = !m.showHeavyDetails
		case key.Matches(msg, m.keys.Comparison):
			m.showComparison = !m.showComparison
		case key.Matches(msg, m.keys.Reset):
			return m.reset()
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// submitIdea starts the scenario call. Empty input is a no-op: the guard
// condition, not an error.
func (m Model) submitIdea() (tea.Model, tea.Cmd) {
	idea := strings.TrimSpace(m.ideaInput.Value())
	if idea == "" {
		return m, nil
	}
	m.errMsg = ""
	m.prevStep = StepIdea
	m.step = StepProcessing
	gen := m.generation
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		data, err := m.est.ParseScenario(ctx, idea)
		return scenarioResultMsg{gen: gen, data: data, err: err}
	})
}

func (m Model) submitUnit() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.unitInput.Value()) == "" {
		return m, nil
	}
	m.errMsg = ""
	m.step = StepCount
	m.unitInput.Blur()
	m.countInput.Focus()
	return m, textinput.Blink
}

func (m Model) submitCount() (tea.Model, tea.Cmd) {
	count, err := strconv.Atoi(strings.TrimSpace(m.countInput.Value()))
	if err != nil || count <= 0 {
		m.errMsg = "Monthly count must be a positive number."
		return m, nil
	}
	idea := strings.TrimSpace(m.ideaInput.Value())
	unit := strings.TrimSpace(m.unitInput.Value())
	scenario := m.scenario

	m.errMsg = ""
	m.prevStep = StepCount
	m.step = StepProcessing
	gen := m.generation
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		calc, err := m.est.Calculate(ctx, idea, unit, count, scenario)
		return calcResultMsg{gen: gen, calc: calc, err: err}
	})
}

// reset returns the wizard to its initial state: fields, records, toggles
// and the persisted snapshot are all cleared. In-flight calls from before
// the reset are invalidated by the generation bump.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.generation++
	m.step = StepIdea
	m.prevStep = StepIdea
	m.scenario = nil
	m.calc = nil
	m.errMsg = ""
	m.showLightDetails = false
	m.showHeavyDetails = false
	m.showComparison = false
	m.ideaInput.SetValue("")
	m.unitInput.SetValue("")
	m.countInput.SetValue("")
	m.unitInput.Blur()
	m.countInput.Blur()
	m.ideaInput.Focus()
	if m.store != nil {
		m.store.Clear()
	}
	return m, textinput.Blink
}

func (m *Model) persist() {
	if m.store == nil {
		return
	}
	m.store.SaveCalculation(m.calc)
	m.store.SaveFormData(store.FormData{
		BusinessIdea: strings.TrimSpace(m.ideaInput.Value()),
		UnitOfWork:   strings.TrimSpace(m.unitInput.Value()),
		MonthlyCount: strings.TrimSpace(m.countInput.Value()),
	})
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case StepIdea:
		m.ideaInput, cmd = m.ideaInput.Update(msg)
	case StepUnit:
		m.unitInput, cmd = m.unitInput.Update(msg)
	case StepCount:
		m.countInput, cmd = m.countInput.Update(msg)
	}
	return m, cmd
}
