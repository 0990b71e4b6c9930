package discord

import "github.com/bwmarrin/discordgo"

// ExtractModalValues flattens a modal submission into CustomID → value.
func ExtractModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string, len(data.Components))
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}
