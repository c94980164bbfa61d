// FILE: lixenwraith/configfile/settings.go
package configfile

// Size limits of string settings, terminator included
const (
	MaxConfigString = 64
	MaxPlayerString = 60
)

// Compiled-in constants the defaults and clamps refer to
const (
	MaxVolume          = 127
	DefaultPort        = 7777
	DefaultCoopNetIP   = "net.coop64.us"
	DefaultCoopNetPort = 34197
	WindowCenter       = 0xFFFFFFFF
	DesiredWidth       = 1280
	DesiredHeight      = 720

	// BindInvalid marks an unused bind slot
	BindInvalid = 0xFFFF

	// CharacterCount is the number of selectable player models
	CharacterCount = 5
	// ThemeCount is the number of UI themes
	ThemeCount = 3
	// ThemeLight and ThemeDark are the first UI theme indices
	ThemeLight = 0
	ThemeDark  = 1

	FrameLimitMin = 30
	FrameLimitMax = 3000

	// NetworkSocket is the direct socket network system
	NetworkSocket = 0
)

// Palette part indices
const (
	PalettePants = iota
	PaletteShirt
	PaletteGloves
	PaletteShoes
	PaletteHair
	PaletteSkin
	PaletteCap
	PalettePartCount
)

// Palette is a set of player colors indexed by palette part.
type Palette [PalettePartCount]Color

// Window holds the video window settings.
type Window struct {
	X, Y, W, H uint32
	VSync      bool
	Fullscreen bool
	MSAA       uint32
}

// Controls holds one bind set per logical button.
type Controls struct {
	A, B, X, Y, Start, L, R, Z                  BindSet
	CUp, CDown, CLeft, CRight                   BindSet
	StickUp, StickDown, StickLeft, StickRight   BindSet
	Chat, PlayerList                            BindSet
	DUp, DDown, DLeft, DRight                   BindSet
	PrevPage, NextPage, Disconnect, Console     BindSet
	StickDeadzone                               uint32
	RumbleStrength                              uint32
	GamepadNumber                               uint32
	BackgroundGamepad, DisableGamepads          bool
}

// Camera holds the free camera settings.
type Camera struct {
	Enable, Analog, CUp, MouseLook bool
	InvertX, InvertY               bool
	XSens, YSens                   uint32
	Aggression, Pan, Degrade       uint32
}

// Settings is every scalar value persisted in the config file. Options binds
// each field to its key.
type Settings struct {
	Window           Window
	TextureFiltering uint32
	MasterVolume     uint32
	MusicVolume      uint32
	SfxVolume        uint32
	EnvVolume        uint32
	Controls         Controls
	Camera           Camera
	SkipIntro        bool

	DebugOffset uint64
	DebugTags   uint64

	ShowFPS              bool
	UncappedFramerate    bool
	FrameLimit           uint32
	AmountOfPlayers      uint32
	BubbleDeath          bool
	DrawDistance         uint32
	HostPort             uint32
	HostSaveSlot         uint32
	JoinIP               string
	JoinPort             uint32
	NetworkSystem        uint32
	PlayerInteraction    uint32
	KnockbackStrength    uint32
	Nametags             bool
	BouncyLevelBounds    uint32
	PlayerModel          uint32
	PlayerName           string
	MenuStaffRoll        bool
	MenuLevel            uint32
	MenuSound            bool
	MenuRandom           bool
	MenuDemos            bool
	PlayerPalette        Palette
	CustomPalette        Palette
	StayInLevelAfterStar uint32
	GlobalPlayerModels   bool
	DisablePopups        bool
	LuaProfiler          bool
	InterpolationMode    uint32
	DebugPrint           bool
	DebugInfo            bool
	DebugError           bool
	Language             string
	Force4By3            bool
	CoopNetIP            string
	CoopNetPort          uint32
	CoopNetPassword      string
	CoopNetDest          string
	FadeDistantSounds    bool
	Theme                uint32
	ThemeCenter          bool
	UIScale              uint32
	LastVersion          string
}

var defaultPalette = Palette{
	PalettePants:  {0x00, 0x00, 0xff},
	PaletteShirt:  {0xff, 0x00, 0x00},
	PaletteGloves: {0xff, 0xff, 0xff},
	PaletteShoes:  {0x72, 0x1c, 0x0e},
	PaletteHair:   {0x73, 0x06, 0x00},
	PaletteSkin:   {0xfe, 0xc1, 0x79},
	PaletteCap:    {0xff, 0x00, 0x00},
}

// DefaultSettings returns the compiled-in defaults.
func DefaultSettings() *Settings {
	const none = BindInvalid
	return &Settings{
		Window: Window{
			X: WindowCenter,
			Y: WindowCenter,
			W: DesiredWidth,
			H: DesiredHeight,
		},
		TextureFiltering: 2,
		MasterVolume:     80,
		MusicVolume:      MaxVolume,
		SfxVolume:        MaxVolume,
		EnvVolume:        MaxVolume,
		Controls: Controls{
			A:                 BindSet{0x0026, 0x1000, 0x1103},
			B:                 BindSet{0x0033, 0x1001, 0x1101},
			X:                 BindSet{0x0017, 0x1002, none},
			Y:                 BindSet{0x0032, 0x1003, none},
			Start:             BindSet{0x0039, 0x1006, none},
			L:                 BindSet{0x002A, 0x1009, 0x1104},
			R:                 BindSet{0x0036, 0x100A, 0x101B},
			Z:                 BindSet{0x0025, 0x1007, 0x101A},
			CUp:               BindSet{0x0148, none, none},
			CDown:             BindSet{0x0150, none, none},
			CLeft:             BindSet{0x014B, none, none},
			CRight:            BindSet{0x014D, none, none},
			StickUp:           BindSet{0x0011, none, none},
			StickDown:         BindSet{0x001F, none, none},
			StickLeft:         BindSet{0x001E, none, none},
			StickRight:        BindSet{0x0020, none, none},
			Chat:              BindSet{0x001C, none, none},
			PlayerList:        BindSet{0x000F, 0x1004, none},
			DUp:               BindSet{0x0147, 0x100b, none},
			DDown:             BindSet{0x014f, 0x100c, none},
			DLeft:             BindSet{0x0153, 0x100d, none},
			DRight:            BindSet{0x0151, 0x100e, none},
			Console:           BindSet{0x0029, 0x003B, none},
			PrevPage:          BindSet{0x0016, none, none},
			NextPage:          BindSet{0x0018, none, none},
			Disconnect:        BindSet{none, none, none},
			StickDeadzone:     16,
			RumbleStrength:    50,
			BackgroundGamepad: true,
		},
		Camera: Camera{
			XSens:   50,
			YSens:   50,
			Degrade: 50,
			InvertY: true,
		},
		BubbleDeath:        true,
		AmountOfPlayers:    16,
		JoinPort:           DefaultPort,
		HostPort:           DefaultPort,
		HostSaveSlot:       1,
		PlayerInteraction:  1,
		KnockbackStrength:  25,
		Nametags:           true,
		MenuStaffRoll:      true,
		PlayerPalette:      defaultPalette,
		CustomPalette:      defaultPalette,
		FrameLimit:         144,
		DrawDistance:       4,
		InterpolationMode:  1,
		CoopNetIP:          DefaultCoopNetIP,
		CoopNetPort:        DefaultCoopNetPort,
		CoopNetDest:        "0",
		Theme:              ThemeDark,
		ThemeCenter:        true,
		GlobalPlayerModels: true,
	}
}

// Options binds every field of s to its key, in file order.
func (s *Settings) Options() []Option {
	c := &s.Controls
	cam := &s.Camera
	return []Option{
		Bool("fullscreen", &s.Window.Fullscreen),
		Uint("window_x", &s.Window.X),
		Uint("window_y", &s.Window.Y),
		Uint("window_w", &s.Window.W),
		Uint("window_h", &s.Window.H),
		Bool("vsync", &s.Window.VSync),
		Uint("texture_filtering", &s.TextureFiltering),
		Uint("msaa", &s.Window.MSAA),
		Uint("master_volume", &s.MasterVolume),
		Uint("music_volume", &s.MusicVolume),
		Uint("sfx_volume", &s.SfxVolume),
		Uint("env_volume", &s.EnvVolume),
		Binds("key_a", &c.A),
		Binds("key_b", &c.B),
		Binds("key_x", &c.X),
		Binds("key_y", &c.Y),
		Binds("key_start", &c.Start),
		Binds("key_l", &c.L),
		Binds("key_r", &c.R),
		Binds("key_z", &c.Z),
		Binds("key_cup", &c.CUp),
		Binds("key_cdown", &c.CDown),
		Binds("key_cleft", &c.CLeft),
		Binds("key_cright", &c.CRight),
		Binds("key_stickup", &c.StickUp),
		Binds("key_stickdown", &c.StickDown),
		Binds("key_stickleft", &c.StickLeft),
		Binds("key_stickright", &c.StickRight),
		Binds("key_chat", &c.Chat),
		Binds("key_playerlist", &c.PlayerList),
		Binds("key_dup", &c.DUp),
		Binds("key_ddown", &c.DDown),
		Binds("key_dleft", &c.DLeft),
		Binds("key_dright", &c.DRight),
		Binds("key_prev", &c.PrevPage),
		Binds("key_next", &c.NextPage),
		Binds("key_disconnect", &c.Disconnect),
		Binds("key_console", &c.Console),
		Uint("stick_deadzone", &c.StickDeadzone),
		Uint("rumble_strength", &c.RumbleStrength),
		Bool("bettercam_enable", &cam.Enable),
		Bool("bettercam_analog", &cam.Analog),
		Bool("bettercam_cup", &cam.CUp),
		Bool("bettercam_mouse_look", &cam.MouseLook),
		Bool("bettercam_invertx", &cam.InvertX),
		Bool("bettercam_inverty", &cam.InvertY),
		Uint("bettercam_xsens", &cam.XSens),
		Uint("bettercam_ysens", &cam.YSens),
		Uint("bettercam_aggression", &cam.Aggression),
		Uint("bettercam_pan_level", &cam.Pan),
		Uint("bettercam_degrade", &cam.Degrade),
		Bool("skip_intro", &s.SkipIntro),
		// debug
		Uint64("debug_offset", &s.DebugOffset),
		Uint64("debug_tags", &s.DebugTags),
		// coop
		Bool("show_fps", &s.ShowFPS),
		Bool("uncapped_framerate", &s.UncappedFramerate),
		Uint("frame_limit", &s.FrameLimit),
		Uint("amount_of_players", &s.AmountOfPlayers),
		Bool("bubble_death", &s.BubbleDeath),
		Uint("coop_draw_distance", &s.DrawDistance),
		Uint("coop_host_port", &s.HostPort),
		Uint("coop_host_save_slot", &s.HostSaveSlot),
		String("coop_join_ip", &s.JoinIP, MaxConfigString),
		Uint("coop_join_port", &s.JoinPort),
		Uint("coop_network_system", &s.NetworkSystem),
		Uint("coop_player_interaction", &s.PlayerInteraction),
		Uint("coop_player_knockback_strength", &s.KnockbackStrength),
		Bool("coopdx_nametags", &s.Nametags),
		Uint("coopdx_bouncy_bounds", &s.BouncyLevelBounds),
		Uint("coop_player_model", &s.PlayerModel),
		String("coop_player_name", &s.PlayerName, MaxPlayerString),
		Bool("coopdx_menu_staff_roll", &s.MenuStaffRoll),
		Uint("coop_menu_level", &s.MenuLevel),
		Bool("coop_menu_sound", &s.MenuSound),
		Bool("coop_menu_random", &s.MenuRandom),
		Bool("coop_menu_demos", &s.MenuDemos),
		ColorOf("coop_player_palette_pants", &s.PlayerPalette[PalettePants]),
		ColorOf("coop_player_palette_shirt", &s.PlayerPalette[PaletteShirt]),
		ColorOf("coop_player_palette_gloves", &s.PlayerPalette[PaletteGloves]),
		ColorOf("coop_player_palette_shoes", &s.PlayerPalette[PaletteShoes]),
		ColorOf("coop_player_palette_hair", &s.PlayerPalette[PaletteHair]),
		ColorOf("coop_player_palette_skin", &s.PlayerPalette[PaletteSkin]),
		ColorOf("coop_player_palette_cap", &s.PlayerPalette[PaletteCap]),
		ColorOf("coop_custom_palette_pants", &s.CustomPalette[PalettePants]),
		ColorOf("coop_custom_palette_shirt", &s.CustomPalette[PaletteShirt]),
		ColorOf("coop_custom_palette_gloves", &s.CustomPalette[PaletteGloves]),
		ColorOf("coop_custom_palette_shoes", &s.CustomPalette[PaletteShoes]),
		ColorOf("coop_custom_palette_hair", &s.CustomPalette[PaletteHair]),
		ColorOf("coop_custom_palette_skin", &s.CustomPalette[PaletteSkin]),
		ColorOf("coop_custom_palette_cap", &s.CustomPalette[PaletteCap]),
		Uint("coop_stay_in_level_after_star", &s.StayInLevelAfterStar),
		Bool("coopdx_global_player_models", &s.GlobalPlayerModels),
		Bool("disable_popups", &s.DisablePopups),
		Bool("lua_profiler", &s.LuaProfiler),
		Uint("interpolation_mode", &s.InterpolationMode),
		Uint("gamepad_number", &c.GamepadNumber),
		Bool("background_gamepad", &c.BackgroundGamepad),
		Bool("disable_gamepads", &c.DisableGamepads),
		Bool("debug_print", &s.DebugPrint),
		Bool("debug_info", &s.DebugInfo),
		Bool("debug_error", &s.DebugError),
		String("language", &s.Language, MaxConfigString),
		Bool("force_4by3", &s.Force4By3),
		String("coopnet_ip", &s.CoopNetIP, MaxConfigString),
		Uint("coopnet_port", &s.CoopNetPort),
		String("coopnet_password", &s.CoopNetPassword, MaxConfigString),
		String("coopnet_dest", &s.CoopNetDest, MaxConfigString),
		Bool("fade_distant_sounds", &s.FadeDistantSounds),
		Uint("djui_theme", &s.Theme),
		Bool("djui_theme_center", &s.ThemeCenter),
		Uint("djui_scale", &s.UIScale),
		String("last_version", &s.LastVersion, MaxConfigString),
	}
}
