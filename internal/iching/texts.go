package iching

// Text pools for the daily reading. Selection folds the hexagram number and
// changing line into a pool index, so the same (hexagram, line) pair always
// yields the same texts.

var wisdomTexts = []string{
	"Flow with today's energy rather than against it",
	"Stillness reveals what movement conceals",
	"What is ripening cannot be rushed",
	"The obstacle in the path becomes the path",
	"Small consistent steps outlast grand gestures",
	"Listen before speaking, observe before acting",
	"Yield where yielding serves, hold where holding serves",
	"Every ending carries the seed of a beginning",
}

var actionTexts = []string{
	"Take aligned action when the moment is right",
	"Attend to the small task in front of you",
	"Seek counsel before committing to the larger move",
	"Complete what is already in motion before starting anew",
	"Act early while matters are still small",
	"Hold your position and let events come to you",
}

var cautionTexts = []string{
	"Avoid forcing outcomes",
	"Guard against haste dressed up as decisiveness",
	"Do not mistake activity for progress",
	"Resist the urge to correct what is not yours to correct",
	"Beware of overcommitting to please others",
	"Let go of plans that no longer fit the day",
}
