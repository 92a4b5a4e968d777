package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func playingSession(papers int) *GameSession {
	s := NewGameSession(3, papers)
	s.State = StatePlaying
	s.Lives = 3
	s.Papers = papers
	return s
}

// worldWith builds a world with a single hand-placed block, bypassing
// generation so the delivery geometry is exact.
func worldWith(b *Block) *World {
	w := NewWorld(1)
	w.Blocks = append(w.Blocks, b)
	return w
}

func TestThrowBoundedByBudget(t *testing.T) {
	s := playingSession(2)
	ps := NewPaperSystem()
	p := NewPlayer(10)
	bus := NewEventBus()

	require.True(t, ps.Throw(p, -1, s, bus))
	require.True(t, ps.Throw(p, 1, s, bus))
	require.False(t, ps.Throw(p, -1, s, bus), "budget spent")
	require.Len(t, ps.Papers, 2)
	require.Equal(t, 0, s.Papers)
}

func TestThrowRefusedOutsidePlay(t *testing.T) {
	s := NewGameSession(3, 10)
	s.Papers = 10 // still in StateMenu
	ps := NewPaperSystem()
	require.False(t, ps.Throw(NewPlayer(10), -1, s, NewEventBus()))
}

func TestMailboxDeliveryAwards20(t *testing.T) {
	b := &Block{Index: 0, Kind: BlockHouses, Z0: 0}
	b.Mailboxes = append(b.Mailboxes, Mailbox{Pos: vec3(CurbX, 0, 10)})
	w := worldWith(b)
	s := playingSession(5)
	bus := NewEventBus()
	delivered := 0
	bus.Subscribe(EventDelivery, func(e Event) { delivered += e.Data })

	ps := NewPaperSystem()
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:    vec3(CurbX, 1.0, 10),
		Thrown: true,
	})

	ps.Update(0.01, w, s, bus)

	require.Equal(t, MailboxPoints, s.Score)
	require.Equal(t, MailboxPoints, delivered)
	require.Empty(t, ps.Papers, "delivered papers leave play")
}

func TestPorchDeliveryAwards10(t *testing.T) {
	b := &Block{Index: 0, Kind: BlockHouses, Z0: 0}
	b.Porches = append(b.Porches, Porch{Pos: vec3(PorchX, 0, 20)})
	w := worldWith(b)
	s := playingSession(5)
	bus := NewEventBus()

	ps := NewPaperSystem()
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:    vec3(PorchX, 0.5, 20),
		Thrown: true,
	})

	ps.Update(0.01, w, s, bus)

	require.Equal(t, PorchPoints, s.Score)
	require.Empty(t, ps.Papers)
}

func TestMailboxBeatsOverlappingPorch(t *testing.T) {
	b := &Block{Index: 0, Kind: BlockHouses, Z0: 0}
	b.Mailboxes = append(b.Mailboxes, Mailbox{Pos: vec3(CurbX, 0, 10)})
	b.Porches = append(b.Porches, Porch{Pos: vec3(CurbX, 0, 10)})
	w := worldWith(b)
	s := playingSession(5)

	ps := NewPaperSystem()
	ps.Papers = append(ps.Papers, Newspaper{Pos: vec3(CurbX, 0.5, 10), Thrown: true})
	ps.Update(0.01, w, s, NewEventBus())

	require.Equal(t, MailboxPoints, s.Score, "mailbox pays better and wins the overlap")
}

func TestMissedPaperGroundsAndExpires(t *testing.T) {
	w := worldWith(&Block{Index: 0, Kind: BlockHouses, Z0: 0})
	s := playingSession(5)
	bus := NewEventBus()
	expired := 0
	bus.Subscribe(EventPaperExpired, func(Event) { expired++ })

	ps := NewPaperSystem()
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:    vec3(0, 0.3, 5),
		Vel:    vec3(0, -1, 0),
		Thrown: true,
	})

	ps.Update(0.1, w, s, bus)
	require.Len(t, ps.Papers, 1)
	require.True(t, ps.Papers[0].Grounded)
	require.Equal(t, PaperSize/2, ps.Papers[0].Pos[1])
	require.Equal(t, 0.0, ps.Papers[0].Vel[1], "grounded papers stop moving")
	require.Zero(t, ps.InFlight())

	// Age out: nothing happens up to the timeout, removal right after.
	ps.Update(PaperTimeout-0.2, w, s, bus)
	require.Len(t, ps.Papers, 1)
	ps.Update(0.2, w, s, bus)
	require.Empty(t, ps.Papers)
	require.Equal(t, 1, expired)
	require.Equal(t, 0, s.Score, "expired papers score nothing")
}

func TestGroundedPaperCannotDeliver(t *testing.T) {
	b := &Block{Index: 0, Kind: BlockHouses, Z0: 0}
	b.Mailboxes = append(b.Mailboxes, Mailbox{Pos: vec3(CurbX, 0, 10)})
	w := worldWith(b)
	s := playingSession(5)

	ps := NewPaperSystem()
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:      vec3(CurbX, PaperSize/2, 10),
		Thrown:   true,
		Grounded: true,
	})
	ps.Update(0.1, w, s, NewEventBus())

	require.Equal(t, 0, s.Score)
	require.Len(t, ps.Papers, 1)
}

func TestDeliveryZoneRespectsHeight(t *testing.T) {
	b := &Block{Index: 0, Kind: BlockHouses, Z0: 0}
	b.Mailboxes = append(b.Mailboxes, Mailbox{Pos: vec3(CurbX, 0, 10)})
	w := worldWith(b)
	s := playingSession(5)

	ps := NewPaperSystem()
	// Sails over the mailbox, too high to count.
	ps.Papers = append(ps.Papers, Newspaper{
		Pos:    vec3(CurbX, MailboxZoneH+1.0, 10),
		Vel:    vec3(0, 5, 0),
		Thrown: true,
	})
	ps.Update(0.01, w, s, NewEventBus())

	require.Equal(t, 0, s.Score)
	require.Len(t, ps.Papers, 1)
}
