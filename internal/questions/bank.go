package questions

import "github.com/quizwire/quizwire/internal/models"

// DefaultBank is the built-in question set served when no custom bank is
// configured.
var DefaultBank = []models.Question{
	{Prompt: "Does Quentin Tarantino have a cameo in 'Pulp Fiction'?", Answer: true},
	{Prompt: "Is 'Reservoir Dogs' Quentin Tarantino's debut film?", Answer: true},
	{Prompt: "Does 'Kill Bill' feature a black-and-white sequence?", Answer: true},
	{Prompt: "Is 'Once Upon a Time in Hollywood' set in the 1980s?", Answer: false},
	{Prompt: "Does Uma Thurman play the lead role in 'Jackie Brown'?", Answer: false},
	{Prompt: "In 'Django Unchained,' is Dr. King Schultz a bounty hunter?", Answer: true},
	{Prompt: "Is 'The Hateful Eight' primarily set in a saloon?", Answer: false},
	{Prompt: "Does 'Death Proof' feature a serial killer who targets men?", Answer: false},
	{Prompt: "Is 'Inglourious Basterds' centered around the assassination of Hitler?", Answer: true},
	{Prompt: "Does 'Pulp Fiction' win the Academy Award for Best Picture?", Answer: false},
	{Prompt: "In 'Kill Bill,' is the Bride's real name revealed in the first volume?", Answer: false},
	{Prompt: "Does 'Jackie Brown' feature a character named Max Cherry?", Answer: true},
	{Prompt: "In 'Django Unchained,' is the character Django freed at the beginning of the movie?", Answer: false},
	{Prompt: "Is the film 'Reservoir Dogs' entirely set inside a warehouse?", Answer: false},
	{Prompt: "Does 'Once Upon a Time in Hollywood' feature Charles Manson as a main character?", Answer: false},
	{Prompt: "In 'The Hateful Eight,' does the story take place during a blizzard?", Answer: true},
	{Prompt: "Does 'Kill Bill' include a fight scene that lasts more than 10 minutes?", Answer: true},
	{Prompt: "Is 'Inglourious Basterds' a silent film?", Answer: false},
	{Prompt: "Does 'Death Proof' primarily revolve around stunt car driving?", Answer: true},
	{Prompt: "In 'Pulp Fiction,' does Vincent Vega survive the movie?", Answer: false},
}
