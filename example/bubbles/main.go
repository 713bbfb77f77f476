// Package main demonstrates the bubble components: per-kind dispatch,
// emoji enlargement, reply previews, avatars, status icons and the
// override hooks.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	lorem "github.com/drhodes/golorem"

	"git.sr.ht/~converse/bubble"
	"git.sr.ht/~converse/bubble/debug"
	"git.sr.ht/~converse/bubble/emoji"
	"git.sr.ht/~converse/bubble/profile"
	chatwidget "git.sr.ht/~converse/bubble/widget"
	chatmaterial "git.sr.ht/~converse/bubble/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	profileOpt = flag.String("profile", "none", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")
	outline    = flag.Bool("outline", false, "outline every row for layout debugging")
	useRTL     = flag.Bool("rtl", false, "mirror rows for right-to-left placement")
	useDark    = flag.Bool("dark", false, "use the dark palette")
)

func main() {
	flag.Parse()
	var (
		w = app.NewWindow(
			app.Title("Bubbles"),
			app.Size(unit.Dp(500), unit.Dp(800)),
		)
		ops op.Ops
		ui  = NewUI()
	)
	pr := profile.Start(profile.Opt(*profileOpt))
	defer pr.Stop()

	go func() {
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				if err := event.Err; err != nil {
					fmt.Printf("error: premature window close: %v\n", err)
					os.Exit(1)
				}
				pr.Stop()
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				ui.Layout(gtx, event.Insets)
				pr.Record(gtx)
				event.Frame(gtx.Ops)
			}
		}
	}()
	app.Main()
}

const localUser = "me"

var users = []bubble.UserRef{
	{ID: localUser, Name: "Me"},
	{ID: "ada", Name: "Ada"},
	{ID: "bob", Name: "Bob"},
	{ID: "carol", Name: "Carol"},
}

// dateRow marks the transition to a new day within the row list.
type dateRow struct {
	date time.Time
}

func (dateRow) ID() bubble.RowID { return bubble.NoID }

// UI holds the state of the demo across frames.
type UI struct {
	th    *chatmaterial.Theme
	list  widget.List
	rows  *bubble.RowManager
	menu  component.MenuState
	reply widget.Clickable
	copy  widget.Clickable

	insets system.Insets
	// lastPromote is when a local message last advanced a delivery
	// state.
	lastPromote time.Time

	mu   sync.Mutex
	seen map[string]bool
}

func NewUI() *UI {
	ui := &UI{
		th:   chatmaterial.NewTheme(gofont.Collection()),
		seen: make(map[string]bool),
	}
	if *useDark {
		ui.th.UsePalette(chatmaterial.Dark)
	}
	ui.list.Axis = layout.Vertical
	ui.menu = component.MenuState{
		Options: []func(gtx C) D{
			component.MenuItem(ui.th.Theme, &ui.reply, "Reply").Layout,
			component.MenuItem(ui.th.Theme, &ui.copy, "Copy").Layout,
		},
	}
	ui.rows = bubble.NewManager(
		func(row bubble.Row) interface{} {
			switch row.(type) {
			case *bubble.Message:
				return &chatwidget.Row{}
			}
			return nil
		},
		ui.present,
	)
	ui.rows.Rows = demoRows()
	return ui
}

// Layout the demo.
func (ui *UI) Layout(gtx C, insets system.Insets) D {
	paint.Fill(gtx.Ops, ui.th.Theme.Bg)
	ui.insets = insets
	ui.processMenu()
	ui.promoteStatuses(gtx)
	return material.List(ui.th.Theme, &ui.list).Layout(gtx, ui.rows.Len(), func(gtx C, index int) D {
		if !*outline {
			return ui.layoutRow(gtx, index)
		}
		return debug.Outline(gtx, func(gtx C) D {
			return ui.layoutRow(gtx, index)
		})
	})
}

func (ui *UI) layoutRow(gtx C, index int) D {
	dims := ui.rows.Layout(gtx, index)
	// Rows the list chose to lay out are on screen.
	if msg, ok := ui.rows.Rows[index].(*bubble.Message); ok {
		if state, ok := ui.rows.State(msg.ID()).(*chatwidget.Row); ok {
			state.Visibility.Notify(1)
		}
	}
	return dims
}

// present builds the widget for one row.
func (ui *UI) present(row bubble.Row, state interface{}) layout.Widget {
	switch row := row.(type) {
	case *bubble.Message:
		interact := state.(*chatwidget.Row)
		cfg := ui.config(row)
		return chatmaterial.NewRow(ui.th, interact, &ui.menu, row, cfg).Layout
	case dateRow:
		return chatmaterial.DateSeparator(ui.th, row.date).Layout
	}
	return func(C) D { return D{} }
}

// config assembles the per-row rendering context.
func (ui *UI) config(msg *bubble.Message) chatmaterial.Config {
	serial := msg.Serial
	cfg := chatmaterial.Config{
		LocalUserID:         localUser,
		EmojiPolicy:         emoji.Multi,
		HideEmojiBackground: true,
		ShowName:            true,
		ShowStatus:          true,
		ShowUserAvatars:     true,
		Insets:              ui.insets,
		Overrides: chatmaterial.Overrides{
			Audio: ui.layoutVoiceNote,
		},
		Handlers: chatmaterial.Handlers{
			OnTap: func(msg *bubble.Message) {
				log.Printf("tapped %s", msg.Serial)
			},
			OnDoubleTap: func(msg *bubble.Message) {
				log.Printf("double-tapped %s", msg.Serial)
			},
			OnLongPress: func(msg *bubble.Message) {
				log.Printf("long-pressed %s", msg.Serial)
			},
			OnReplyTap: func(replied *bubble.Message) {
				log.Printf("jump to %s", replied.Serial)
			},
			OnStatusTap: func(msg *bubble.Message) {
				log.Printf("status of %s: %s", msg.Serial, msg.Status)
			},
			OnVisible: func(visible bool) {
				ui.markSeen(serial, visible)
			},
		},
	}
	if *useRTL {
		cfg.RTL = chatmaterial.RTLLeftBiased
	}
	// A message continues a run when the next row shares its author; the
	// avatar is drawn only on the last message of a run.
	cfg.Grouped, cfg.ShowAvatar = ui.grouping(msg)
	return cfg
}

// grouping reports whether msg is followed by another message from the
// same author, and whether its avatar should be drawn.
func (ui *UI) grouping(msg *bubble.Message) (grouped, showAvatar bool) {
	for i, row := range ui.rows.Rows {
		m, ok := row.(*bubble.Message)
		if !ok || m.Serial != msg.Serial {
			continue
		}
		if i+1 < len(ui.rows.Rows) {
			if next, ok := ui.rows.Rows[i+1].(*bubble.Message); ok {
				grouped = next.Author.ID == msg.Author.ID
			}
		}
		return grouped, !grouped
	}
	return false, true
}

// layoutVoiceNote renders Audio messages, which have no built-in
// renderer.
func (ui *UI) layoutVoiceNote(gtx C, msg *bubble.Message, preview bool) D {
	label, _ := msg.Payload.(string)
	if label == "" {
		label = "Voice message"
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				sideLength := gtx.Dp(unit.Dp(24))
				gtx.Constraints.Max = image.Pt(sideLength, sideLength)
				gtx.Constraints.Min = gtx.Constraints.Max
				return chatmaterial.SendingIcon.Layout(gtx, ui.th.Palette.TextFor(msg.LocalTo(localUser)).Body)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				l := material.Body1(ui.th.Theme, label)
				l.Color = ui.th.Palette.TextFor(msg.LocalTo(localUser)).Body
				return l.Layout(gtx)
			}),
		)
	})
}

// markSeen records the first time a row scrolls into view.
func (ui *UI) markSeen(serial string, visible bool) {
	if !visible {
		return
	}
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if !ui.seen[serial] {
		ui.seen[serial] = true
		log.Printf("%s became visible", serial)
	}
}

// processMenu drains the context menu's clicks.
func (ui *UI) processMenu() {
	if ui.reply.Clicked() {
		log.Println("menu: reply")
	}
	if ui.copy.Clicked() {
		log.Println("menu: copy")
	}
}

// promoteStatuses walks the local user's messages through the delivery
// states over time. It runs on the frame goroutine, the only writer of
// row data, and schedules the next frame itself.
func (ui *UI) promoteStatuses(gtx C) {
	const interval = 2 * time.Second
	if time.Since(ui.lastPromote) < interval {
		op.InvalidateOp{At: ui.lastPromote.Add(interval)}.Add(gtx.Ops)
		return
	}
	for _, row := range ui.rows.Rows {
		msg, ok := row.(*bubble.Message)
		if !ok || !msg.LocalTo(localUser) {
			continue
		}
		if msg.Status < bubble.Seen && msg.Status != bubble.Error {
			msg.Status++
			ui.lastPromote = gtx.Now
			op.InvalidateOp{At: ui.lastPromote.Add(interval)}.Add(gtx.Ops)
			return
		}
	}
}

// demoRows fabricates a conversation exercising every message kind.
func demoRows() []bubble.Row {
	rand.Seed(time.Now().UnixNano())
	var (
		rows   []bubble.Row
		serial int
		now    = time.Now()
		byID   = map[string]*bubble.Message{}
	)
	next := func(author bubble.UserRef, mutate func(*bubble.Message)) *bubble.Message {
		serial++
		msg := &bubble.Message{
			Serial: fmt.Sprintf("demo-%03d", serial),
			Author: author,
			SentAt: now.Add(time.Duration(serial-40) * time.Minute),
			Status: bubble.Sending,
		}
		mutate(msg)
		byID[msg.Serial] = msg
		rows = append(rows, msg)
		return msg
	}
	rows = append(rows, dateRow{date: now.AddDate(0, 0, -1)})
	for i := 0; i < 40; i++ {
		author := users[rand.Intn(len(users))]
		switch rand.Intn(10) {
		case 0:
			next(author, func(m *bubble.Message) {
				m.Content = [...]string{"\U0001F44D", "\U0001F602\U0001F602", "❤️", "\U0001F389"}[rand.Intn(4)]
			})
		case 1:
			next(author, func(m *bubble.Message) {
				m.Kind = bubble.Image
				m.Picture = gradient(400, 300)
			})
		case 2:
			next(author, func(m *bubble.Message) {
				m.Kind = bubble.File
				m.File = bubble.FileInfo{
					Name: lorem.Word(4, 10) + ".pdf",
					Size: int64(rand.Intn(40 << 20)),
				}
			})
		case 3:
			next(author, func(m *bubble.Message) {
				m.Kind = bubble.Audio
				m.Payload = fmt.Sprintf("Voice message (0:%02d)", rand.Intn(60))
			})
		case 4:
			quoted := rows[rand.Intn(len(rows))]
			next(author, func(m *bubble.Message) {
				m.Content = lorem.Sentence(3, 10)
				if q, ok := quoted.(*bubble.Message); ok {
					m.RepliedTo = q
				}
			})
		default:
			next(author, func(m *bubble.Message) {
				m.Content = lorem.Paragraph(1, 3)
			})
		}
		if i == 30 {
			rows = append(rows, dateRow{date: now})
		}
	}
	// One failed send, to show the error glyph.
	next(users[0], func(m *bubble.Message) {
		m.Content = lorem.Sentence(3, 8)
		m.Status = bubble.Error
	})
	return rows
}

// gradient synthesizes a placeholder picture.
func gradient(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}
