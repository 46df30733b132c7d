// Package bot exposes the trading service as Discord slash commands.
//
// The package is split into a transport independent part (Command, Executor
// and the render functions producing the German reply texts) and the Bot,
// which owns the discordgo session, registers the commands and answers
// interactions with ephemeral messages.
package bot
