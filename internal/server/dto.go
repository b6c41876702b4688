package server

import (
	. "ClimbArena/internal/game"
)

type playerDTO struct {
	HP         float64 `json:"hp"`
	MaxHP      float64 `json:"max_hp"`
	Shield     float64 `json:"shield"`
	X          float64 `json:"x"`
	Meter      float64 `json:"meter"`
	Attack     float64 `json:"attack"`
	CritChance float64 `json:"crit_chance"`
	Hit        bool    `json:"hit"`
}

type entryDTO struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Class     string  `json:"class,omitempty"`
	ClassName string  `json:"class_name,omitempty"`
	Rarity    string  `json:"rarity,omitempty"`
	Role      string  `json:"role,omitempty"`
	X         float64 `json:"x"`
	Size      float64 `json:"size"`
	HP        float64 `json:"hp"`
	MaxHP     float64 `json:"max_hp"`
	Shield    float64 `json:"shield"`
	Meter     float64 `json:"meter"`
	Hit       bool    `json:"hit"`
	Active    bool    `json:"active"`
	DropsKey  bool    `json:"drops_key,omitempty"`
}

type floatingTextDTO struct {
	Text   string  `json:"text"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
	Crit   bool    `json:"crit,omitempty"`
	Target string  `json:"target"`
	X      float64 `json:"x"`
	TTL    int     `json:"ttl"`
}

type bonusOptionDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	Magnitude   float64 `json:"magnitude"`
	Color       string  `json:"color"`
}

type consumableDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Rarity string  `json:"rarity"`
}

type ledgerDTO struct {
	XP   int `json:"xp"`
	Gold int `json:"gold"`
	Gems int `json:"gems"`
	Keys int `json:"keys"`
}

type battleDTO struct {
	Tick         int               `json:"tick"`
	Phase        string            `json:"phase"`
	Result       string            `json:"result"`
	InCombat     bool              `json:"in_combat"`
	Paused       bool              `json:"paused"`
	Resolved     bool              `json:"resolved"`
	Player       playerDTO         `json:"player"`
	Entries      []entryDTO        `json:"entries"`
	Texts        []floatingTextDTO `json:"texts,omitempty"`
	Bonus        []bonusOptionDTO  `json:"bonus,omitempty"`
	Loadout      []consumableDTO   `json:"loadout,omitempty"`
	Ledger       ledgerDTO         `json:"ledger"`
	LevelUpPulse int               `json:"level_up_pulse,omitempty"`
}

type profileDTO struct {
	ID         string          `json:"id"`
	Attributes Attributes      `json:"attributes"`
	Wallet     Wallet          `json:"wallet"`
	Items      []consumableDTO `json:"items"`
	Keys       int             `json:"keys"`
}

type stateMsg struct {
	Now      float64    `json:"now"`
	Tension  int        `json:"tension"`
	Progress float64    `json:"progress"`
	Level    int        `json:"level"`
	Profile  profileDTO `json:"profile"`
	Battle   *battleDTO `json:"battle,omitempty"`
	Cues     []string   `json:"cues,omitempty"`
}

type walkMsg struct {
	Outcome string   `json:"outcome"`
	Tension int      `json:"tension"`
	Drop    *dropDTO `json:"drop,omitempty"`
}

type dropDTO struct {
	Kind   string         `json:"kind"`
	Amount int            `json:"amount"`
	Item   *consumableDTO `json:"item,omitempty"`
}

type resultMsg struct {
	Result string `json:"result"`
	XP     int    `json:"xp"`
	Gold   int    `json:"gold"`
	Gems   int    `json:"gems"`
	Keys   int    `json:"keys"`
}

type errorMsg struct {
	Message string `json:"message"`
}

func consumableToDTO(c Consumable) consumableDTO {
	return consumableDTO{
		ID:     c.ID,
		Name:   c.Name,
		Kind:   string(c.Kind),
		Value:  c.Value,
		Rarity: c.Rarity.String(),
	}
}

func consumablesToDTO(items []Consumable) []consumableDTO {
	if len(items) == 0 {
		return nil
	}
	out := make([]consumableDTO, 0, len(items))
	for _, it := range items {
		out = append(out, consumableToDTO(it))
	}
	return out
}

func profileToDTO(p *Profile) profileDTO {
	return profileDTO{
		ID:         p.ID,
		Attributes: p.Attributes,
		Wallet:     p.Wallet,
		Items:      consumablesToDTO(p.Items),
		Keys:       p.Keys,
	}
}

func battleToDTO(rs RenderState) *battleDTO {
	dto := &battleDTO{
		Tick:     rs.Tick,
		Phase:    rs.Phase,
		Result:   rs.Result,
		InCombat: rs.InCombat,
		Paused:   rs.Paused,
		Resolved: rs.Resolved,
		Player: playerDTO{
			HP:         rs.Player.HP,
			MaxHP:      rs.Player.MaxHP,
			Shield:     rs.Player.Shield,
			X:          rs.Player.X,
			Meter:      rs.Player.MeterPct,
			Attack:     rs.Player.Attack,
			CritChance: rs.Player.CritChance,
			Hit:        rs.Player.Hit,
		},
		Entries: make([]entryDTO, 0, len(rs.Entries)),
		Loadout: consumablesToDTO(rs.Loadout),
		Ledger: ledgerDTO{
			XP:   rs.Ledger.XP,
			Gold: rs.Ledger.Gold,
			Gems: rs.Ledger.Gems,
			Keys: rs.Ledger.Keys,
		},
		LevelUpPulse: rs.LevelUpPulse,
	}
	for _, e := range rs.Entries {
		dto.Entries = append(dto.Entries, entryDTO{
			ID:        e.ID,
			Kind:      e.Kind,
			Label:     e.Label,
			Color:     e.Color,
			Class:     e.Class,
			ClassName: e.ClassName,
			Rarity:    e.Rarity,
			Role:      e.Role,
			X:         e.X,
			Size:      e.Size,
			HP:        e.HP,
			MaxHP:     e.MaxHP,
			Shield:    e.Shield,
			Meter:     e.MeterPct,
			Hit:       e.Hit,
			Active:    e.Active,
			DropsKey:  e.DropsKey,
		})
	}
	for _, ft := range rs.Texts {
		dto.Texts = append(dto.Texts, floatingTextDTO{
			Text:   ft.Text,
			Value:  ft.Value,
			Color:  ft.Color,
			Crit:   ft.Crit,
			Target: string(ft.Target),
			X:      ft.X,
			TTL:    ft.TTL,
		})
	}
	for _, o := range rs.Bonus {
		dto.Bonus = append(dto.Bonus, bonusOptionDTO{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
			Kind:        string(o.Kind),
			Magnitude:   o.Magnitude,
			Color:       o.Color,
		})
	}
	return dto
}

func walkToDTO(out WalkOutcome) walkMsg {
	msg := walkMsg{Outcome: out.Kind.String(), Tension: out.Tension}
	if out.Kind == WalkDrop {
		d := &dropDTO{Kind: string(out.Drop.Kind), Amount: out.Drop.Amount}
		if out.Drop.Kind == DropItem {
			item := consumableToDTO(out.Drop.Item)
			d.Item = &item
		}
		msg.Drop = d
	}
	return msg
}

func resultToDTO(r BattleResult) resultMsg {
	return resultMsg{
		Result: r.Result.String(),
		XP:     r.XP,
		Gold:   r.Gold,
		Gems:   r.Gems,
		Keys:   r.Keys,
	}
}
