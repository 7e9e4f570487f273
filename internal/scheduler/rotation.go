package scheduler

import "github.com/rsoarez/planista/internal/studyplan"

// rotationSlots is the repeating area sequence used to diversify
// subject selection across a day: quant → language → science →
// humanities, twice over, eight slots per cycle.
var rotationSlots = [8]studyplan.Area{
	studyplan.AreaQuant,
	studyplan.AreaLanguage,
	studyplan.AreaScience,
	studyplan.AreaHumanities,
	studyplan.AreaQuant,
	studyplan.AreaLanguage,
	studyplan.AreaScience,
	studyplan.AreaHumanities,
}

// rotationArea returns the area favored at the given rotation cursor.
func rotationArea(cursor int) studyplan.Area {
	return rotationSlots[cursor%len(rotationSlots)]
}
