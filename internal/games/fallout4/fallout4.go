// Package fallout4 defines the builtin profile for Fallout 4. The table set
// is smaller than the Elder Scrolls games'; leveled-list merging is the main
// patcher this game supports.
package fallout4

import "bmm/internal/profile"

// Profile builds the Fallout 4 game profile.
func Profile() *profile.Profile {
	return &profile.Profile{
		ID:         "fallout4",
		Name:       "Fallout 4",
		Exe:        "Fallout4.exe",
		DetectFile: "Fallout4.exe",
		MasterFiles: []string{
			"Fallout4.esm",
			"DLCRobot.esm",
			"DLCworkshop01.esm",
			"DLCCoast.esm",
			"DLCworkshop02.esm",
			"DLCworkshop03.esm",
			"DLCNukaWorld.esm",
		},
		IniFiles:    []string{"Fallout4.ini", "Fallout4Prefs.ini", "Fallout4Custom.ini"},
		DataDir:     "Data",
		NexusDomain: "fallout4",

		DataFiles: profile.NewFileSet(
			"Fallout4.esm",
			"Fallout4 - Animations.ba2",
			"Fallout4 - Interface.ba2",
			"Fallout4 - Materials.ba2",
			"Fallout4 - Meshes.ba2",
			"Fallout4 - MeshesExtra.ba2",
			"Fallout4 - Misc.ba2",
			"Fallout4 - Shaders.ba2",
			"Fallout4 - Sounds.ba2",
			"Fallout4 - Startup.ba2",
			"Fallout4 - Textures1.ba2",
			"Fallout4 - Voices.ba2",
			"DLCRobot.esm",
			"DLCRobot - Main.ba2",
			"DLCRobot - Textures.ba2",
			"DLCworkshop01.esm",
			"DLCworkshop01 - Main.ba2",
			"DLCworkshop01 - Textures.ba2",
			"DLCCoast.esm",
			"DLCCoast - Main.ba2",
			"DLCCoast - Textures.ba2",
			"DLCworkshop02.esm",
			"DLCworkshop02 - Main.ba2",
			"DLCworkshop02 - Textures.ba2",
			"DLCworkshop03.esm",
			"DLCworkshop03 - Main.ba2",
			"DLCworkshop03 - Textures.ba2",
			"DLCNukaWorld.esm",
			"DLCNukaWorld - Main.ba2",
			"DLCNukaWorld - Textures.ba2",
		),
		VanillaFiles: profile.NewFileSet(
			"Fallout4.esm",
			"Fallout4 - Animations.ba2",
			"Fallout4 - Interface.ba2",
			"Fallout4 - Materials.ba2",
			"Fallout4 - Meshes.ba2",
			"Fallout4 - MeshesExtra.ba2",
			"Fallout4 - Misc.ba2",
			"Fallout4 - Shaders.ba2",
			"Fallout4 - Sounds.ba2",
			"Fallout4 - Startup.ba2",
			"Fallout4 - Textures1.ba2",
			"Fallout4 - Voices.ba2",
			"Fallout4.cdx",
			"DLCRobot.esm",
			"DLCRobot - Main.ba2",
			"DLCRobot - Textures.ba2",
			"DLCRobot.cdx",
			"DLCworkshop01.esm",
			"DLCworkshop01 - Main.ba2",
			"DLCworkshop01 - Textures.ba2",
			"DLCCoast.esm",
			"DLCCoast - Main.ba2",
			"DLCCoast - Textures.ba2",
			"DLCCoast.cdx",
			"DLCworkshop02.esm",
			"DLCworkshop02 - Main.ba2",
			"DLCworkshop02 - Textures.ba2",
			"DLCworkshop03.esm",
			"DLCworkshop03 - Main.ba2",
			"DLCworkshop03 - Textures.ba2",
			"DLCworkshop03.cdx",
			"DLCNukaWorld.esm",
			"DLCNukaWorld - Main.ba2",
			"DLCNukaWorld - Textures.ba2",
			"DLCNukaWorld.cdx",
		),

		ZeroFormEditorIDs: []string{
			"fAVDCarryWeightMult",
			"fJumpHeightMin",
			"fPipboyEffectColorB",
			"fPipboyEffectColorG",
			"fPipboyEffectColorR",
		},

		ConditionFunctions: conditionFunctions,
		GlobalTweaks:       globalTweaks,
		SettingTweaks:      settingTweaks,
		Tables:             tables,
		RecordTypeNames:    recordTypeNames,
	}
}

var conditionFunctions = []profile.ConditionFunction{
	{ID: 0, Name: "GetWantBlocking", ParamArity: 0},
	{ID: 1, Name: "GetDistance", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 5, Name: "GetLocked", ParamArity: 0},
	{ID: 14, Name: "GetValue", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 18, Name: "GetCurrentTime", ParamArity: 0},
	{ID: 27, Name: "GetLineOfSight", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 32, Name: "GetInSameCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 36, Name: "MenuMode", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 46, Name: "GetDead", ParamArity: 0},
	{ID: 47, Name: "GetItemCount", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 56, Name: "GetQuestRunning", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 58, Name: "GetStage", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 59, Name: "GetStageDone", ParamArity: 2, Param1: profile.ParamForm, Param2: profile.ParamInt},
	{ID: 66, Name: "GetLockLevel", ParamArity: 0},
	{ID: 68, Name: "GetInCell", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 70, Name: "GetIsRace", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 71, Name: "GetIsSex", ParamArity: 1, Param1: profile.ParamInt},
	{ID: 72, Name: "GetInFaction", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 73, Name: "GetIsID", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 74, Name: "GetFactionRank", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 75, Name: "GetGlobalValue", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 84, Name: "GetIsReference", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 136, Name: "IsInList", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 182, Name: "GetEquipped", ParamArity: 1, Param1: profile.ParamForm},
	{ID: 560, Name: "HasKeyword", ParamArity: 1, Param1: profile.ParamForm},
}

var globalTweaks = []profile.Tweak{
	{
		Key:       "timescale",
		Label:     "Timescale",
		Tooltip:   "Game minutes per real minute.",
		EditorIDs: []string{"TimeScale"},
		Options: []profile.TweakOption{
			{Label: "6", Value: 6},
			{Label: "10", Value: 10},
			{Label: "20 (default)", Value: 20, IsDefault: true},
			{Label: "Custom", CustomInput: true},
		},
	},
}

var settingTweaks = []profile.Tweak{
	{
		Key:       "max-active-quests",
		Label:     "Quests: Max Active Markers",
		Tooltip:   "Maximum number of quest markers shown at once.",
		EditorIDs: []string{"iMaxActiveQuests"},
		Options: []profile.TweakOption{
			{Label: "25 (default)", Value: 25, IsDefault: true},
			{Label: "50", Value: 50},
			{Label: "100", Value: 100},
			{Label: "Custom", CustomInput: true},
		},
	},
	{
		Key:       "vats-playback-speed",
		Label:     "VATS: Playback Speed",
		Tooltip:   "Slow-motion multiplier during VATS playback.",
		EditorIDs: []string{"fVATSPlaybackSlomo"},
		Options: []profile.TweakOption{
			{Label: "0.1 (default)", Value: 0.1, IsDefault: true},
			{Label: "0.25", Value: 0.25},
			{Label: "0.5", Value: 0.5},
			{Label: "1.0", Value: 1},
			{Label: "Custom", CustomInput: true},
		},
	},
}

var tables = map[string]profile.Table{
	"names": {
		"ALCH": nil, "AMMO": nil, "ARMO": nil, "BOOK": nil, "CONT": nil,
		"DOOR": nil, "KEYM": nil, "MISC": nil, "NPC_": nil, "WEAP": nil,
	},
	"prices": {
		"ALCH": {"value"}, "AMMO": {"value"}, "ARMO": {"value"},
		"BOOK": {"value"}, "KEYM": {"value"}, "MISC": {"value"},
		"WEAP": {"value"},
	},
	"stats": {
		"AMMO": {"eid", "value", "damage"},
		"ARMO": {"eid", "weight", "value", "armorRating"},
		"WEAP": {"eid", "weight", "value", "damage", "speed", "reach"},
	},
	"leveledLists": {
		"LVLI": nil, "LVLN": nil,
	},
	"cellRecAttrs": {
		"C.Light":       {"lighting", "lightingTemplate"},
		"C.Location":    {"location"},
		"C.Music":       {"music"},
		"C.Name":        {"full"},
		"C.RecordFlags": {"flags1"},
		"C.Water":       {"water", "waterHeight"},
	},
}

var recordTypeNames = map[string]string{
	"ALCH": "Ingestible",
	"AMMO": "Ammo",
	"ARMO": "Armor",
	"BOOK": "Book",
	"CELL": "Cell",
	"COBJ": "Constructible Object",
	"CONT": "Container",
	"DOOR": "Door",
	"FACT": "Faction",
	"GLOB": "Global",
	"GMST": "Game Setting",
	"KEYM": "Key",
	"KYWD": "Keyword",
	"LVLI": "Leveled Item",
	"LVLN": "Leveled NPC",
	"MISC": "Misc. Item",
	"NPC_": "NPC",
	"OMOD": "Object Modification",
	"PERK": "Perk",
	"QUST": "Quest",
	"WEAP": "Weapon",
	"WTHR": "Weather",
}
