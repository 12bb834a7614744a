// Package oblivion defines the builtin profile for The Elder Scrolls IV:
// Oblivion. All data here is literal; the registry validates and freezes it.
package oblivion

import "bmm/internal/profile"

// Profile builds the Oblivion game profile.
func Profile() *profile.Profile {
	return &profile.Profile{
		ID:          "oblivion",
		Name:        "Oblivion",
		Exe:         "Oblivion.exe",
		DetectFile:  "Oblivion.exe",
		MasterFiles: []string{"Oblivion.esm"},
		IniFiles:    []string{"Oblivion.ini"},
		DataDir:     "Data",
		NexusDomain: "oblivion",

		DataFiles: profile.NewFileSet(
			"Oblivion.esm",
			"Oblivion - Meshes.bsa",
			"Oblivion - Misc.bsa",
			"Oblivion - Sounds.bsa",
			"Oblivion - Textures - Compressed.bsa",
			"Oblivion - Voices1.bsa",
			"Oblivion - Voices2.bsa",
		),
		VanillaFiles: profile.NewFileSet(
			"Oblivion.esm",
			"Oblivion - Meshes.bsa",
			"Oblivion - Misc.bsa",
			"Oblivion - Sounds.bsa",
			"Oblivion - Textures - Compressed.bsa",
			"Oblivion - Voices1.bsa",
			"Oblivion - Voices2.bsa",
			"DLCShiveringIsles.esp",
			"Knights.esp",
			"Credits.txt",
		),

		ZeroFormEditorIDs: []string{
			"fActorLuckSkillMult",
			"fCombatDistance",
			"fJumpHeightMin",
			"fPotionGoldValueMult",
			"iLevItemLevelDifferenceMax",
		},

		ConditionFunctions: conditionFunctions,
		GlobalTweaks:       globalTweaks,
		SettingTweaks:      settingTweaks,
		Tables:             tables,
		RecordTypeNames:    recordTypeNames,
	}
}

// conditionFunctions lists the CTDA condition functions bmm understands for
// Oblivion plugins. Param kinds drive form-ID fixup when merging records.
var conditionFunctions = []profile.ConditionFunction{
	{ID: 1, Name: "GetDistance", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 5, Name: "GetLocked", ParamArity: 0},
	{ID: 6, Name: "GetPos", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 8, Name: "GetAngle", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 12, Name: "GetSecondsPassed", ParamArity: 0},
	{ID: 14, Name: "GetActorValue", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 18, Name: "GetCurrentTime", ParamArity: 0},
	{ID: 24, Name: "GetScale", ParamArity: 0},
	{ID: 27, Name: "GetLineOfSight", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 32, Name: "GetInSameCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 35, Name: "GetDisabled", ParamArity: 0},
	{ID: 36, Name: "MenuMode", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 39, Name: "GetDisease", ParamArity: 0},
	{ID: 40, Name: "GetVampire", ParamArity: 0},
	{ID: 41, Name: "GetClothingValue", ParamArity: 0},
	{ID: 42, Name: "SameFaction", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 43, Name: "SameRace", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 44, Name: "SameSex", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 45, Name: "GetDetected", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 46, Name: "GetDead", ParamArity: 0},
	{ID: 47, Name: "GetItemCount", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 53, Name: "GetScriptVariable", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamInt},
	{ID: 56, Name: "GetQuestRunning", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 58, Name: "GetStage", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 59, Name: "GetStageDone", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamInt},
	{ID: 60, Name: "GetFactionRankDifference", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamForm},
	{ID: 61, Name: "GetAlarmed", ParamArity: 0},
	{ID: 63, Name: "IsRaining", ParamArity: 0},
	{ID: 64, Name: "GetAttacked", ParamArity: 0},
	{ID: 65, Name: "GetIsCreature", ParamArity: 0},
	{ID: 66, Name: "GetLockLevel", ParamArity: 0},
	{ID: 67, Name: "GetShouldAttack", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 68, Name: "GetInCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 69, Name: "GetIsClass", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 70, Name: "GetIsRace", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 71, Name: "GetIsSex", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 72, Name: "GetInFaction", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 73, Name: "GetIsID", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 74, Name: "GetFactionRank", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 75, Name: "GetGlobalValue", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 77, Name: "IsSneaking", ParamArity: 0},
	{ID: 79, Name: "GetInSameFaction", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamForm},
	{ID: 91, Name: "GetPCIsClass", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 98, Name: "GetIsPlayableRace", ParamArity: 0},
	{ID: 99, Name: "GetOffersServicesNow", ParamArity: 0},
	{ID: 122, Name: "GetCrime", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamInt},
	{ID: 136, Name: "GetIsUsedItem", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 182, Name: "GetEquipped", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 193, Name: "GetPCExpelled", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 214, Name: "HasMagicEffect", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 244, Name: "GetRestrained", ParamArity: 0},
	{ID: 249, Name: "GetIsPlayerBirthsign", ParamArity: 1, Param1: profile.ParamForm},
}

var globalTweaks = []profile.Tweak{
	{
		Key:       "timescale",
		Label:     "Timescale",
		Tooltip:   "Game minutes per real minute.",
		EditorIDs: []string{"TimeScale"},
		Options: []profile.TweakOption{
			{Label: "10", Value: 10},
			{Label: "16", Value: 16},
			{Label: "24", Value: 24},
			{Label: "30 (default)", Value: 30, IsDefault: true},
			{Label: "40", Value: 40},
			{Label: "Custom", CustomInput: true},
		},
	},
}

var settingTweaks = []profile.Tweak{
	{
		Key:       "arrow-litter-count",
		Label:     "Arrow: Litter Count",
		Tooltip:   "Maximum number of spent arrows left lying around.",
		EditorIDs: []string{"iArrowMaxRefCount"},
		Options: []profile.TweakOption{
			{Label: "15 (default)", Value: 15, IsDefault: true},
			{Label: "25", Value: 25},
			{Label: "35", Value: 35},
			{Label: "50", Value: 50},
			{Label: "100", Value: 100},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "arrow-litter-time",
		Label:     "Arrow: Litter Time",
		Tooltip:   "Seconds before spent arrows disappear.",
		EditorIDs: []string{"fArrowAgeMax"},
		Options: []profile.TweakOption{
			{Label: "1.5 min (default)", Value: 90, IsDefault: true},
			{Label: "5 min", Value: 300},
			{Label: "10 min", Value: 600},
			{Label: "30 min", Value: 1800},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "camera-chase-distance",
		Label:     "Camera: Chase Distance",
		Tooltip:   "Maximum third-person camera distance.",
		EditorIDs: []string{"fVanityModeWheelMax", "fChase3rdPersonZUnitsPerSecond"},
		Options: []profile.TweakOption{
			{Label: "x1 (default)", Value: 600, IsDefault: true},
			{Label: "x2", Value: 1200},
			{Label: "x5", Value: 3000},
			{Label: "x10", Value: 6000},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "crime-alarm-distance",
		Label:     "Crime: Alarm Distance",
		Tooltip:   "Distance at which NPCs raise the alarm over a crime.",
		EditorIDs: []string{"iAlarmDistance"},
		Options: []profile.TweakOption{
			{Label: "4000 (default)", Value: 4000, IsDefault: true},
			{Label: "3000", Value: 3000},
			{Label: "2000", Value: 2000},
			{Label: "1000", Value: 1000},
			{Label: "500", Value: 500},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:              "combat-max-actors",
		Label:            "Combat: Max Actors",
		Tooltip:          "Maximum number of actors fighting the player at once.",
		EditorIDs:        []string{"iNumberActorsInCombatPlayer"},
		EnabledByDefault: true,
		Options: []profile.TweakOption{
			{Label: "10 (default)", Value: 10, IsDefault: true},
			{Label: "15", Value: 15},
			{Label: "20", Value: 20},
			{Label: "30", Value: 30},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "bounty-assault",
		Label:     "Bounty: Assault",
		Tooltip:   "Gold bounty for assault.",
		EditorIDs: []string{"iCrimeGoldAttackMin"},
		Options: []profile.TweakOption{
			{Label: "40", Value: 40},
			{Label: "100", Value: 100},
			{Label: "500 (default)", Value: 500, IsDefault: true},
			{Label: "Custom", CustomInput: true},
		},
	},
}

// tables are the per-subsystem record attribute maps. A tag with no
// attributes is plain membership (the subsystem touches the whole record).
var tables = map[string]profile.Table{
	"names": {
		"ALCH": nil, "AMMO": nil, "APPA": nil, "ARMO": nil, "BOOK": nil,
		"BSGN": nil, "CLAS": nil, "CLOT": nil, "CONT": nil, "CREA": nil,
		"DOOR": nil, "ENCH": nil, "EYES": nil, "FACT": nil, "FLOR": nil,
		"HAIR": nil, "INGR": nil, "KEYM": nil, "LIGH": nil, "MISC": nil,
		"NPC_": nil, "RACE": nil, "SGST": nil, "SLGM": nil, "SPEL": nil,
		"WEAP": nil,
	},
	"prices": {
		"ALCH": {"value"}, "AMMO": {"value"}, "APPA": {"value"},
		"ARMO": {"value"}, "BOOK": {"value"}, "CLOT": {"value"},
		"INGR": {"value"}, "KEYM": {"value"}, "LIGH": {"value"},
		"MISC": {"value"}, "SGST": {"value"}, "SLGM": {"value"},
		"WEAP": {"value"},
	},
	"stats": {
		"AMMO": {"eid", "weight", "value", "damage", "speed", "enchantPoints"},
		"APPA": {"eid", "weight", "value", "quality"},
		"ARMO": {"eid", "weight", "value", "health", "strength"},
		"BOOK": {"eid", "weight", "value", "enchantPoints"},
		"CLOT": {"eid", "weight", "value", "enchantPoints"},
		"INGR": {"eid", "weight", "value"},
		"KEYM": {"eid", "weight", "value"},
		"LIGH": {"eid", "weight", "value", "duration"},
		"MISC": {"eid", "weight", "value"},
		"SGST": {"eid", "weight", "value", "uses"},
		"SLGM": {"eid", "weight", "value"},
		"WEAP": {"eid", "weight", "value", "health", "damage", "speed", "reach", "enchantPoints"},
	},
	"sounds": {
		"ACTI": {"sound"},
		"CONT": {"soundOpen", "soundClose"},
		"CREA": {"footWeight", "inheritsSoundsFrom", "sounds"},
		"DOOR": {"soundOpen", "soundClose", "soundLoop"},
		"LIGH": {"sound"},
		"MGEF": {"castingSound", "boltSound", "hitSound", "areaSound"},
		"WTHR": {"sounds"},
	},
	"graphics": {
		"ALCH": {"iconPath", "model"},
		"AMMO": {"iconPath", "model"},
		"ARMO": {"maleBody", "maleWorld", "maleIconPath", "femaleBody", "femaleWorld", "femaleIconPath", "flags"},
		"BOOK": {"iconPath", "model"},
		"CLOT": {"maleBody", "maleWorld", "maleIconPath", "femaleBody", "femaleWorld", "femaleIconPath", "flags"},
		"CREA": {"bodyParts", "nift_p"},
		"DOOR": {"model"},
		"EFSH": {"particleTexture", "fillTexture"},
		"GRAS": {"model"},
		"INGR": {"iconPath", "model"},
		"KEYM": {"iconPath", "model"},
		"LIGH": {"iconPath", "model"},
		"MGEF": {"model", "effectShader", "enchantEffect", "light"},
		"MISC": {"iconPath", "model"},
		"STAT": {"model"},
		"TREE": {"iconPath", "model"},
		"WEAP": {"iconPath", "model"},
	},
	"cellRecAttrs": {
		"C.Climate":     {"climate", "flags.behaveLikeExterior"},
		"C.Light":       {"ambientRed", "ambientGreen", "ambientBlue", "directionalRed", "directionalGreen", "directionalBlue", "fogRed", "fogGreen", "fogBlue", "fogNear", "fogFar"},
		"C.Music":       {"music"},
		"C.Name":        {"full"},
		"C.Owner":       {"ownership", "flags.publicPlace"},
		"C.RecordFlags": {"flags1"},
		"C.Water":       {"water", "waterHeight"},
	},
}

// recordTypeNames gives display names for record tags, used by list output
// and save-game summaries.
var recordTypeNames = map[string]string{
	"ACTI": "Activator",
	"ALCH": "Potion",
	"AMMO": "Ammo",
	"APPA": "Apparatus",
	"ARMO": "Armor",
	"BOOK": "Book",
	"BSGN": "Birthsign",
	"CELL": "Cell",
	"CLAS": "Class",
	"CLOT": "Clothing",
	"CONT": "Container",
	"CREA": "Creature",
	"DIAL": "Dialog",
	"DOOR": "Door",
	"ENCH": "Enchantment",
	"EYES": "Eyes",
	"FACT": "Faction",
	"FLOR": "Flora",
	"GLOB": "Global",
	"GMST": "Game Setting",
	"HAIR": "Hair",
	"INGR": "Ingredient",
	"KEYM": "Key",
	"LIGH": "Light",
	"MGEF": "Magic Effect",
	"MISC": "Misc. Item",
	"NPC_": "NPC",
	"PACK": "AI Package",
	"QUST": "Quest",
	"RACE": "Race",
	"SGST": "Sigil Stone",
	"SLGM": "Soul Gem",
	"SPEL": "Spell",
	"STAT": "Static",
	"WEAP": "Weapon",
	"WTHR": "Weather",
}
