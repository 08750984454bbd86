package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

// Generation tuning constants.
const (
	friendlyShare        = 0.3 // share of events that are friendlies
	completedShare       = 0.85
	presentChance        = 0.65
	lateChance           = 0.10
	excusedChance        = 0.10
	contributionChance   = 0.25
	monetaryShare        = 0.6
	maxMonetaryAmount    = 50_000
	maxGoalsPerSide      = 5
	seasonMonths         = 10
	monthlyFeeAmount     = 10_000
	quarterlyShare       = 0.2 // share of fee payments covering a quarter
	feePaymentCompliance = 0.7 // chance a member pays any given month
)

var firstNames = []string{
	"Arash", "Bruno", "Carlos", "Daniel", "Emre", "Felix", "Gustav",
	"Hamid", "Ivan", "Jonas", "Kofi", "Luca", "Mateo", "Nikola",
	"Omar", "Pavel", "Quentin", "Rafael", "Samir", "Tomas",
}

var lastNames = []string{
	"Almeida", "Berg", "Costa", "Dimitrov", "Eriksen", "Fischer",
	"Garcia", "Hansen", "Ibrahim", "Jensen", "Kovac", "Larsson",
	"Moreau", "Novak", "Olsen", "Petrov", "Rossi", "Silva",
	"Tanaka", "Vasquez",
}

var memberStatuses = []model.MemberStatus{
	model.StatusActive, model.StatusActive, model.StatusActive,
	model.StatusActive, model.StatusActive, model.StatusActive,
	model.StatusInjured, model.StatusSuspended, model.StatusInactive,
}

// Club is a fully generated synthetic data set.
type Club struct {
	Members       []model.Member
	Events        []model.Event
	Attendance    []model.Attendance
	Contributions []model.Contribution
	FeePayments   []model.FeePayment
}

// generator produces reproducible synthetic club data.
type generator struct {
	rng *rand.Rand
	now time.Time
}

func newGenerator(seed int64) *generator {
	return &generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC().Truncate(24 * time.Hour),
	}
}

// Club generates a whole club: members with a staff pair, a season of
// events, attendance for every completed event, and scattered
// contributions and fee payments.
func (g *generator) Club(memberCount, eventCount int) *Club {
	club := &Club{}

	club.Members = g.members(memberCount)
	club.Events = g.events(eventCount)
	club.Attendance = g.attendance(club.Members, club.Events)
	club.Contributions = g.contributions(club.Members)
	club.FeePayments = g.feePayments(club.Members)

	g.fillMatchSheets(club.Members, club.Events, club.Attendance)
	return club
}

func (g *generator) members(count int) []model.Member {
	members := make([]model.Member, 0, count)
	seasonStart := g.now.AddDate(0, -seasonMonths, 0)

	for i := 0; i < count; i++ {
		pos := g.position(i, count)
		joined := seasonStart.AddDate(0, 0, g.rng.Intn(seasonMonths*28))
		members = append(members, model.Member{
			ID:         uuid.NewString(),
			Name:       g.name(),
			Position:   pos,
			Status:     memberStatuses[g.rng.Intn(len(memberStatuses))],
			DateJoined: joined,
		})
	}
	return members
}

// position keeps a playable squad shape: one keeper, one coach and one
// manager at the head of the roster, the rest drawn from outfield roles.
func (g *generator) position(i, count int) model.Position {
	switch {
	case i == 0:
		return model.PositionGoalkeeper
	case i == 1 && count > 3:
		return model.PositionCoach
	case i == 2 && count > 4:
		return model.PositionManager
	}
	outfield := []model.Position{
		model.PositionCentreBack, model.PositionLeftBack, model.PositionRightBack,
		model.PositionSweeper, model.PositionDefensiveMidfield,
		model.PositionCentralMidfield, model.PositionAttackingMidfield,
		model.PositionLeftWing, model.PositionRightWing, model.PositionStriker,
	}
	return outfield[g.rng.Intn(len(outfield))]
}

func (g *generator) name() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *generator) events(count int) []model.Event {
	events := make([]model.Event, 0, count)
	seasonStart := g.now.AddDate(0, -seasonMonths, 0)
	span := int(g.now.Sub(seasonStart).Hours() / 24)

	for i := 0; i < count; i++ {
		date := seasonStart.AddDate(0, 0, g.rng.Intn(span))
		typ := model.EventTraining
		title := fmt.Sprintf("Training session %d", i+1)
		if g.rng.Float64() < friendlyShare {
			typ = model.EventFriendly
			title = fmt.Sprintf("Friendly vs %s FC", lastNames[g.rng.Intn(len(lastNames))])
		}
		events = append(events, model.Event{
			ID:          uuid.NewString(),
			Type:        typ,
			Title:       title,
			Date:        date,
			IsCompleted: g.rng.Float64() < completedShare,
		})
	}
	return events
}

func (g *generator) attendance(members []model.Member, events []model.Event) []model.Attendance {
	var marks []model.Attendance
	for _, e := range events {
		if !e.IsCompleted {
			continue
		}
		for _, m := range members {
			marks = append(marks, model.Attendance{
				ID:       uuid.NewString(),
				MemberID: m.ID,
				EventID:  e.ID,
				Status:   g.mark(),
			})
		}
	}
	return marks
}

func (g *generator) mark() model.AttendanceStatus {
	r := g.rng.Float64()
	switch {
	case r < presentChance:
		return model.AttendancePresent
	case r < presentChance+lateChance:
		return model.AttendanceLate
	case r < presentChance+lateChance+excusedChance:
		return model.AttendanceExcused
	default:
		return model.AttendanceAbsent
	}
}

// fillMatchSheets writes result sheets onto completed friendlies, drawing
// scorers and card recipients from members who were present.
func (g *generator) fillMatchSheets(members []model.Member, events []model.Event, marks []model.Attendance) {
	presentByEvent := make(map[string][]string)
	for _, a := range marks {
		if a.Status == model.AttendancePresent || a.Status == model.AttendanceLate {
			presentByEvent[a.EventID] = append(presentByEvent[a.EventID], a.MemberID)
		}
	}

	for i := range events {
		e := &events[i]
		if e.Type != model.EventFriendly || !e.IsCompleted {
			continue
		}
		present := presentByEvent[e.ID]
		if len(present) == 0 {
			continue
		}

		md := &model.MatchDetails{
			HomeScore: g.rng.Intn(maxGoalsPerSide + 1),
			AwayScore: g.rng.Intn(maxGoalsPerSide + 1),
		}
		for j := 0; j < md.HomeScore; j++ {
			scorer := present[g.rng.Intn(len(present))]
			md.GoalScorers = append(md.GoalScorers, scorer)
			if g.rng.Float64() < 0.7 {
				md.Assists = append(md.Assists, present[g.rng.Intn(len(present))])
			}
		}
		if g.rng.Float64() < 0.3 {
			md.YellowCards = append(md.YellowCards, present[g.rng.Intn(len(present))])
		}
		if g.rng.Float64() < 0.05 {
			md.RedCards = append(md.RedCards, present[g.rng.Intn(len(present))])
		}
		md.ManOfTheMatch = present[g.rng.Intn(len(present))]
		e.MatchDetails = md
	}
}

func (g *generator) contributions(members []model.Member) []model.Contribution {
	var contribs []model.Contribution
	for _, m := range members {
		for month := 0; month < seasonMonths; month++ {
			if g.rng.Float64() >= contributionChance {
				continue
			}
			date := g.now.AddDate(0, -month, -g.rng.Intn(28))
			c := model.Contribution{
				ID:       uuid.NewString(),
				MemberID: m.ID,
				Date:     date,
			}
			if g.rng.Float64() < monetaryShare {
				c.Type = model.ContributionMonetary
				c.Amount = int64(g.rng.Intn(maxMonetaryAmount)) + 1
				c.Description = "Donation to the club fund"
			} else {
				c.Type = model.ContributionInKind
				c.Description = "Equipment and matchday help"
			}
			contribs = append(contribs, c)
		}
	}
	return contribs
}

func (g *generator) feePayments(members []model.Member) []model.FeePayment {
	var payments []model.FeePayment
	for _, m := range members {
		cursor := time.Date(m.DateJoined.Year(), m.DateJoined.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !cursor.After(g.now) {
			if g.rng.Float64() >= feePaymentCompliance {
				cursor = cursor.AddDate(0, 1, 0)
				continue
			}
			p := model.FeePayment{
				ID:          uuid.NewString(),
				MemberID:    m.ID,
				PaymentDate: cursor.AddDate(0, 0, g.rng.Intn(28)),
				Amount:      monthlyFeeAmount,
			}
			if g.rng.Float64() < quarterlyShare {
				quarter := (int(cursor.Month())-1)/3 + 1
				p.PeriodCovered = fmt.Sprintf("%d-Q%d", cursor.Year(), quarter)
				p.Amount = monthlyFeeAmount * 3
				cursor = cursor.AddDate(0, 3, 0)
			} else {
				p.PeriodCovered = cursor.Format("2006-01")
				cursor = cursor.AddDate(0, 1, 0)
			}
			payments = append(payments, p)
		}
	}
	return payments
}
