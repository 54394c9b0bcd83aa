// Package render builds visual trees for the external image renderer. The
// functions here are pure: fetched data in, a node tree out. Rasterization
// happens outside this system.
package render

import "fmt"

type Node struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// LeaderboardRow is one resolved leaderboard entry.
type LeaderboardRow struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

func Pending() Node {
	return Node{
		Type: "box",
		Style: map[string]string{
			"display":        "flex",
			"justifyContent": "center",
			"fontSize":       "44",
			"marginTop":      "200px",
		},
		Children: []Node{
			{Type: "text", Text: "Waiting for payment confirmation.."},
		},
	}
}

func Settled(message string) Node {
	return Node{
		Type: "box",
		Style: map[string]string{
			"display":        "flex",
			"justifyContent": "center",
			"fontSize":       "64",
			"marginTop":      "200px",
		},
		Children: []Node{
			{Type: "text", Text: message},
		},
	}
}

func ErrorMessage(message string) Node {
	return Node{
		Type: "box",
		Style: map[string]string{
			"display":        "flex",
			"justifyContent": "center",
			"fontSize":       "36",
			"marginTop":      "200px",
		},
		Children: []Node{
			{Type: "text", Text: message},
		},
	}
}

// MintFinish renders the freshly minted color as a full square with the
// hex code underneath.
func MintFinish(color string) Node {
	return Node{
		Type: "box",
		Style: map[string]string{
			"display":         "flex",
			"flexDirection":   "column",
			"alignItems":      "center",
			"backgroundColor": "#f3f3f3",
		},
		Children: []Node{
			{
				Type: "box",
				Style: map[string]string{
					"height":          "580px",
					"width":           "600px",
					"backgroundColor": color,
				},
			},
			{
				Type: "box",
				Style: map[string]string{
					"display":       "flex",
					"flexDirection": "row",
				},
				Children: []Node{
					{Type: "text", Text: "Minted!"},
					{Type: "text", Text: color, Style: map[string]string{"textTransform": "uppercase"}},
				},
			},
		},
	}
}

// Leaderboard renders the top-collectors table plus the viewer's balance.
func Leaderboard(rows []LeaderboardRow, viewerBalance string) Node {
	children := []Node{
		{Type: "text", Text: "Leaderboard", Style: map[string]string{"fontSize": "40", "fontWeight": "700"}},
	}
	for _, row := range rows {
		children = append(children, Node{
			Type: "box",
			Style: map[string]string{
				"display":       "flex",
				"flexDirection": "row",
			},
			Children: []Node{
				{Type: "text", Text: fmt.Sprintf("#%d", row.Rank)},
				{Type: "text", Text: row.Name},
				{Type: "text", Text: fmt.Sprintf("%d", row.Balance)},
			},
		})
	}
	children = append(children, Node{
		Type: "text",
		Text: fmt.Sprintf("Your Balance (COLORS) = %s", viewerBalance),
	})

	return Node{
		Type: "box",
		Style: map[string]string{
			"display":        "flex",
			"flexDirection":  "column",
			"alignItems":     "center",
			"justifyContent": "center",
			"fontSize":       "20",
		},
		Children: children,
	}
}
