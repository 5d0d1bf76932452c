package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shogi/internal/record"
	"shogi/internal/shogi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// Model 是对局录入界面：上方棋盘，下方日志和命令行。
type Model struct {
	pos   *shogi.Position
	prev  []*shogi.Position // 每手之前的局面，悔棋用
	moves []shogi.Move

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

var reNumericMove = regexp.MustCompile(`^\d{4}\+?$`)

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "move or command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		pos:   shogi.NewInitialPosition(),
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"ready (press i to enter a move or command)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()

				if cmdline != "" {
					m.execCommand(cmdline)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "new":
		m.pos = shogi.NewInitialPosition()
		m.prev = nil
		m.moves = nil
		m.appendLog("new game")

	case "undo":
		if len(m.prev) == 0 {
			m.appendLog("nothing to undo")
			return
		}
		m.pos = m.prev[len(m.prev)-1]
		m.prev = m.prev[:len(m.prev)-1]
		m.moves = m.moves[:len(m.moves)-1]
		m.appendLog(fmt.Sprintf("undone, %d moves left", len(m.moves)))

	case "moves":
		tokens := legalTokens(m.pos)
		if len(tokens) == 0 {
			m.appendLog("no moves")
			return
		}
		for i := 0; i < len(tokens); i += 8 {
			m.appendLog("  " + strings.Join(tokens[i:min(i+8, len(tokens))], " "))
		}

	case "save":
		if len(parts) != 2 {
			m.appendLog("usage: save <path>")
			return
		}
		if err := record.Save(parts[1], m.moves); err != nil {
			m.appendLog(fmt.Sprintf("save failed: %v", err))
			return
		}
		m.appendLog(fmt.Sprintf("saved %d moves to %s", len(m.moves), parts[1]))

	case "load":
		if len(parts) != 2 {
			m.appendLog("usage: load <path>")
			return
		}
		g, err := record.Load(parts[1])
		if err != nil {
			m.appendLog(fmt.Sprintf("load failed: %v", err))
			return
		}
		m.setGame(g)
		m.appendLog(fmt.Sprintf("loaded %d moves from %s", len(m.moves), parts[1]))

	default:
		m.execMove(line)
	}
}

// setGame 把载入的棋谱重放一遍，顺便攒出悔棋用的局面链。
func (m *Model) setGame(g *record.Game) {
	pos := shogi.NewInitialPosition()
	m.prev = nil
	for _, mv := range g.Moves {
		m.prev = append(m.prev, pos)
		pos = pos.Apply(mv)
	}
	m.pos = pos
	m.moves = append([]shogi.Move(nil), g.Moves...)
}

// execMove 把输入当成一手棋来走。接受完整棋谱记号（+7776FU），也接受两种
// 省略写法：不带方向符号的记号按当前手番补上；四位数字 7776 按起点终点在
// 合法着手里找那一手，加 + 后缀表示成驹（7776+）。
func (m *Model) execMove(line string) {
	mv, err := m.resolveMove(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("bad move %q: %v", line, err))
		return
	}
	if !isLegal(m.pos, mv) {
		m.appendLog("illegal move: " + mv.String())
		return
	}
	m.prev = append(m.prev, m.pos)
	m.pos = m.pos.Apply(mv)
	m.moves = append(m.moves, mv)
	m.appendLog("played " + mv.String())
}

func (m *Model) resolveMove(line string) (shogi.Move, error) {
	if reNumericMove.MatchString(line) {
		return m.resolveNumeric(line)
	}
	token := line
	if !strings.HasPrefix(token, "+") && !strings.HasPrefix(token, "-") {
		if m.pos.SideToMove == shogi.Black {
			token = "+" + token
		} else {
			token = "-" + token
		}
	}
	return m.pos.DecodeMove(token)
}

func (m *Model) resolveNumeric(s string) (shogi.Move, error) {
	promote := strings.HasSuffix(s, "+")
	from := shogi.Square{File: int(s[0] - '0'), Rank: int(s[1] - '0')}
	to := shogi.Square{File: int(s[2] - '0'), Rank: int(s[3] - '0')}
	for _, cand := range m.pos.GenerateMoves() {
		if cand.Kind == shogi.MoveNormal && cand.From == from && cand.To == to && cand.Promote == promote {
			return cand, nil
		}
	}
	return shogi.Move{}, fmt.Errorf("no legal move %v%v promote=%v", from, to, promote)
}

func isLegal(p *shogi.Position, mv shogi.Move) bool {
	for _, cand := range p.GenerateMoves() {
		if cand == mv {
			return true
		}
	}
	return false
}

// legalTokens 列出当前局面全部可走着手的棋谱记号，终局标记没有记号，跳过。
func legalTokens(p *shogi.Position) []string {
	moves := p.GenerateMoves()
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		if mv.Kind == shogi.MoveTerminal {
			continue
		}
		out = append(out, shogi.EncodeMove(mv))
	}
	return out
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

// statusLine 报告手番和终局状态。
func (m *Model) statusLine() string {
	for _, side := range []shogi.Side{shogi.Black, shogi.White} {
		if _, ok := m.pos.KingSquare(side); !ok {
			return fmt.Sprintf("king taken, %v wins", side.Opposite())
		}
	}
	if m.pos.IsCheckmate() {
		return fmt.Sprintf("checkmate, %v wins", m.pos.SideToMove.Opposite())
	}
	if m.pos.InCheck(m.pos.SideToMove) {
		return fmt.Sprintf("%v to move, in check", m.pos.SideToMove)
	}
	return fmt.Sprintf("%v to move", m.pos.SideToMove)
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("shogi  move %d  %s  mode:%s", len(m.moves), m.statusLine(), modeStr))

	boardBox := boxStyle.Render(RenderPosition(m.pos))

	logHeight := max(4, m.height-19)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to type (moves: +7776FU / 7776 / 0055KI; commands: new undo moves save load; q quits)"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}
