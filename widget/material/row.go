package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/x/component"

	"git.sr.ht/~converse/bubble"
	chatlayout "git.sr.ht/~converse/bubble/layout"
	chatwidget "git.sr.ht/~converse/bubble/widget"
)

// rowSlot identifies one segment of a message row.
type rowSlot uint8

const (
	slotAvatar rowSlot = iota
	slotStatusBefore
	slotColumn
	slotStatusAfter
)

// rowOrder computes the left-to-right slots of a message row. The
// avatar slot exists only on other authors' rows with avatars enabled;
// status icons only on the local user's rows with status enabled, on
// the side selected by leftStatus.
func rowOrder(local, showUserAvatars, showStatus, leftStatus bool) []rowSlot {
	slots := make([]rowSlot, 0, 3)
	if !local && showUserAvatars {
		slots = append(slots, slotAvatar)
	}
	if local && showStatus && leftStatus {
		slots = append(slots, slotStatusBefore)
	}
	slots = append(slots, slotColumn)
	if local && showStatus && !leftStatus {
		slots = append(slots, slotStatusAfter)
	}
	return slots
}

// RowStyle configures the presentation of one chat message within a
// vertical list of messages: the bubble column with its optional reply
// preview, beside the avatar slot and status icon.
//
// Rows never fail for a well-formed Message; kinds without a renderer
// degrade to empty bubbles. Visibility events are delivered by the host
// through Interaction.Visibility.Notify, which forwards threshold
// crossings to the configured callback.
type RowStyle struct {
	// Msg is the message being presented.
	Msg *bubble.Message
	// Interaction holds the interactive state of this row.
	Interaction *chatwidget.Row

	// Local indicates that the message was sent by the local user.
	Local bool
	// Direction aligns the row's content toward its outward side.
	Direction layout.Direction
	// ColumnAlign aligns the reply preview and bubble within the
	// column.
	ColumnAlign layout.Alignment
	// RTL mirrors the row order for right-to-left placement.
	RTL RTLAlignment

	OuterMargin chatlayout.VerticalMarginStyle
	// Gutter reserves the outward side gap (including the platform
	// safe area).
	Gutter chatlayout.GutterStyle

	// Avatar presents the author on other users' rows.
	Avatar AvatarStyle
	// ShowAvatarSlot reserves the avatar column; ShowAvatar draws the
	// avatar rather than the alignment spacer.
	ShowAvatarSlot bool
	ShowAvatar     bool
	AvatarSlot     unit.Dp

	// Status presents the delivery state on local rows.
	Status     StatusIconStyle
	ShowStatus bool
	LeftStatus bool
	StatusGap  unit.Dp

	// Reply presents the quoted message above the main bubble.
	Reply    *ReplyStyle
	ReplyGap unit.Dp

	// MessageStyle configures the main bubble.
	MessageStyle

	// Menu configures the long-press/right-click context menu.
	Menu *component.MenuStyle

	handlers Handlers
}

// NewRow creates a style type that can lay out the data for a message.
// menu may be nil when the row has no context menu.
func NewRow(th *Theme, interact *chatwidget.Row, menu *component.MenuState, msg *bubble.Message, cfg Config) RowStyle {
	if interact == nil {
		interact = &chatwidget.Row{}
	}
	local := msg.LocalTo(cfg.LocalUserID)
	r := RowStyle{
		Msg:          msg,
		Interaction:  interact,
		Local:        local,
		Direction:    BubbleAlignment(local, cfg.RTL),
		RTL:          cfg.RTL,
		OuterMargin:  chatlayout.RowMargin(),
		AvatarSlot:   th.AvatarSlot,
		StatusGap:    unit.Dp(4),
		ReplyGap:     th.Reply.Gap,
		MessageStyle: NewMessage(th, &interact.Message, msg, &cfg, false),
		handlers:     cfg.Handlers,
	}
	// The outward gutter is the fixed side gap plus the platform safe
	// area on the side the bubble is aligned toward.
	const sideGap = unit.Dp(20)
	r.Gutter.Alignment = layout.End
	r.ColumnAlign = layout.Start
	if r.Direction == layout.E {
		r.Gutter.RightWidth = sideGap + cfg.Insets.Right
		r.ColumnAlign = layout.End
	} else {
		r.Gutter.LeftWidth = sideGap + cfg.Insets.Left
	}
	if !local && cfg.ShowUserAvatars {
		r.ShowAvatarSlot = true
		r.ShowAvatar = cfg.ShowAvatar
		if cfg.ShowAvatar {
			r.Avatar = Avatar(th, &interact.Avatar, msg.Author, nil, &cfg)
		}
	}
	if local && cfg.ShowStatus {
		r.ShowStatus = true
		r.LeftStatus = cfg.LeftStatus
		r.Status = StatusIcon(th, &interact.StatusClick, msg, &cfg)
	}
	if msg.RepliedTo != nil {
		reply := Reply(th, interact, msg.RepliedTo, &cfg)
		r.Reply = &reply
	}
	if menu != nil {
		m := component.Menu(th.Theme, menu)
		r.Menu = &m
	}
	interact.Visibility.Callback = cfg.Handlers.OnVisible
	return r
}

// Layout the message row.
func (c RowStyle) Layout(gtx C) D {
	c.processEvents()
	return c.OuterMargin.Layout(gtx, func(gtx C) D {
		return c.Gutter.Layout(gtx,
			nil,
			func(gtx C) D {
				return c.Direction.Layout(gtx, c.layoutRow)
			},
			nil,
		)
	})
}

// layoutRow lays out the row slots bottom-aligned, mirrored in RTL
// mode.
func (c RowStyle) layoutRow(gtx C) D {
	var children []layout.FlexChild
	for _, slot := range rowOrder(c.Local, c.ShowAvatarSlot, c.ShowStatus, c.LeftStatus) {
		switch slot {
		case slotAvatar:
			children = append(children, layout.Rigid(c.layoutAvatar))
		case slotStatusBefore:
			children = append(children,
				layout.Rigid(c.Status.Layout),
				layout.Rigid(layout.Spacer{Width: c.StatusGap}.Layout),
			)
		case slotColumn:
			children = append(children, layout.Rigid(c.layoutColumn))
		case slotStatusAfter:
			children = append(children,
				layout.Rigid(layout.Spacer{Width: c.StatusGap}.Layout),
				layout.Rigid(c.Status.Layout),
			)
		}
	}
	children = chatlayout.Reverse(c.RTL == RTLLeftBiased, children...)
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.End,
	}.Layout(gtx, children...)
}

// layoutAvatar lays out the avatar, or a fixed-width spacer when the
// avatar is hidden so grouped rows stay aligned.
func (c RowStyle) layoutAvatar(gtx C) D {
	if !c.ShowAvatar {
		return layout.Spacer{Width: c.AvatarSlot}.Layout(gtx)
	}
	return layout.Flex{Alignment: layout.End}.Layout(gtx,
		layout.Rigid(c.Avatar.Layout),
		layout.Rigid(layout.Spacer{Width: c.AvatarSlot - c.Avatar.Size}.Layout),
	)
}

// layoutColumn lays out the reply preview above the main bubble within
// the width limit.
func (c RowStyle) layoutColumn(gtx C) D {
	if max := gtx.Dp(c.MaxMessageWidth); gtx.Constraints.Max.X > max {
		gtx.Constraints.Max.X = max
	}
	var children []layout.FlexChild
	if c.Reply != nil {
		children = append(children,
			layout.Rigid(c.Reply.Layout),
			layout.Rigid(layout.Spacer{Height: c.ReplyGap}.Layout),
		)
	}
	children = append(children, layout.Rigid(c.layoutBubble))
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: c.ColumnAlign,
	}.Layout(gtx, children...)
}

// layoutBubble stacks the main bubble beneath its tap area and context
// menu.
func (c RowStyle) layoutBubble(gtx C) D {
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(c.MessageStyle.Layout),
		layout.Expanded(func(gtx C) D {
			return c.Interaction.Clickable.Layout(gtx, func(gtx C) D {
				return D{Size: gtx.Constraints.Min}
			})
		}),
		layout.Expanded(func(gtx C) D {
			return c.Interaction.ContextArea.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min = image.Point{}
				if c.Menu == nil {
					return D{}
				}
				return c.Menu.Layout(gtx)
			})
		}),
	)
}

// processEvents drains this frame's gestures and invokes the caller's
// handlers.
func (c RowStyle) processEvents() {
	h := c.handlers
	for _, click := range c.Interaction.Message.Clickable.Clicks() {
		switch {
		case click.NumClicks > 1:
			if h.OnDoubleTap != nil {
				h.OnDoubleTap(c.Msg)
			}
		default:
			if h.OnTap != nil {
				h.OnTap(c.Msg)
			}
		}
	}
	for range c.Interaction.ReplyClick.Clicks() {
		if h.OnReplyTap != nil && c.Msg.RepliedTo != nil {
			h.OnReplyTap(c.Msg.RepliedTo)
		}
	}
	for range c.Interaction.StatusClick.Clicks() {
		if h.OnStatusTap != nil {
			h.OnStatusTap(c.Msg)
		}
	}
	active := c.Interaction.ContextArea.Active()
	if active && !c.Interaction.LongPressed && h.OnLongPress != nil {
		h.OnLongPress(c.Msg)
	}
	c.Interaction.LongPressed = active
}
