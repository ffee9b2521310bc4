package abbrev

import (
	"slices"
	"strings"
)

// dictionary maps lowercase words to their fixed abbreviation.
// Keys of MaxKeepLength characters or fewer are kept for completeness but
// never reached by AbbreviateWord.
var dictionary = map[string]string{
	"alternative":    "Alt",
	"ambience":       "Amb",
	"animation":      "Anim",
	"attackable":     "Att",
	"automap":        "Map",
	"automatic":      "Auto",
	"blocking":       "Block",
	"calculate":      "Calc",
	"calculation":    "Calc",
	"champion":       "Champ",
	"chance":         "Chance",
	"channel":        "Chan",
	"character":      "Char",
	"class":          "Cls",
	"collision":      "Coll",
	"component":      "Comp",
	"compound":       "Comp",
	"coordinates":    "Coord",
	"damage":         "Dmg",
	"density":        "Dense",
	"desecrated":     "Dsec",
	"description":    "Desc",
	"dexterity":      "Dex",
	"difference":     "Diff",
	"direction":      "Dir",
	"distance":       "Dist",
	"divisor":        "Div",
	"durability":     "Dur",
	"elemental":      "Elem",
	"environ":        "Env",
	"environment":    "Env",
	"equipment":      "Equip",
	"equivalent":     "Equiv",
	"exclusive":      "Excl",
	"experience":     "Exp",
	"falloff":        "Fall",
	"filename":       "File",
	"frequency":      "Freq",
	"function":       "Func",
	"graphics":       "Gfx",
	"groups":         "Grp",
	"hireling":       "Hire",
	"intelligence":   "Int",
	"inventory":      "Inv",
	"level":          "Lvl",
	"lightning":      "Light",
	"lockable":       "Lock",
	"magic":          "Mag",
	"material":       "Mat",
	"maximum":        "Max",
	"mercenary":      "Merc",
	"minimum":        "Min",
	"missile":        "Mis",
	"modifier":       "Mod",
	"monster":        "Mon",
	"multiplicative": "Mult",
	"multiplier":     "Mult",
	"nightmare":      "NM",
	"operate":        "Op",
	"orientation":    "Orient",
	"overlay":        "Ovl",
	"parameter":      "Param",
	"passive":        "Pass",
	"percentage":     "Pct",
	"populate":       "Pop",
	"position":       "Pos",
	"priority":       "Prio",
	"probability":    "Prob",
	"program":        "Prg",
	"random":         "Rand",
	"redirect":       "Redir",
	"reflect":        "Refl",
	"requirement":    "Req",
	"requirements":   "Req",
	"resistance":     "Res",
	"restore":        "Rest",
	"resurrect":      "Res",
	"reverb":         "Rev",
	"selectable":     "Sel",
	"selected":       "Sel",
	"server":         "Srv",
	"spawnable":      "Spawn",
	"stackable":      "Stack",
	"streaming":      "Stream",
	"strength":       "Str",
	"substitute":     "Sub",
	"synchronize":    "Sync",
	"threshold":      "Thresh",
	"tracking":       "Track",
	"transform":      "Trans",
	"treasure":       "Tres",
	"unique":         "Uniq",
	"upgrade":        "Upg",
	"velocity":       "Vel",
	"vitality":       "Vit",
	"volume":         "Vol",
	"warning":        "Wrn",
}

// Lookup returns the dictionary abbreviation for word, ignoring case.
func Lookup(word string) (string, bool) {
	abbr, ok := dictionary[strings.ToLower(word)]

	return abbr, ok
}

// DictionaryWords returns the dictionary keys in sorted order.
func DictionaryWords() []string {
	words := make([]string, 0, len(dictionary))
	for w := range dictionary {
		words = append(words, w)
	}

	slices.Sort(words)

	return words
}
