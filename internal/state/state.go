package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/vinser/snake/internal/geoip"
	"github.com/vinser/snake/internal/sound"
)

// HighScore is one row of the high-score table.
type HighScore struct {
	Score   int       `json:"score"`
	Fruits  int       `json:"fruits"`
	Nick    string    `json:"nick"`
	Session string    `json:"session"`
	Date    time.Time `json:"date"`
}

// State holds persistent settings and high scores. A game in progress is never saved.
type State struct {
	SpriteSize   string             `json:"sprite_size"`   // Sprite size: small, medium, large
	Theme        string             `json:"theme"`         // Colour theme: day, night or real
	Mute         bool               `json:"mute"`          // Mute all sounds
	Width        int                `json:"width"`         // Board width in cells
	Height       int                `json:"height"`        // Board height in cells
	HighScores   []HighScore        `json:"high_scores"`   // Best scores, highest first
	LocationInfo geoip.LocationInfo `json:"location_info"` // Last known location for the real theme

	SoundManager *sound.Manager `json:"-"`
	path         string
}

const (
	// Sprite sizes
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteMedium

	// Themes
	ThemeDay     = "day"
	ThemeNight   = "night"
	ThemeReal    = "real"
	ThemeDefault = ThemeDay

	// Board size
	WidthDefault  = 15
	HeightDefault = 15

	MaxHighScores = 5
)

var encryptionKey = generateKey()

// generateKey creates a 32-byte AES key from system-specific data.
func generateKey() []byte {
	appID, err := machineid.ProtectedID("snake")
	if err != nil {
		appID = "default-snake-id" // Fallback if machine ID fails
	}
	sum := sha256.Sum256([]byte(appID))
	return sum[:]
}

// New returns default settings that will be saved to path.
func New(path string) *State {
	return &State{
		SpriteSize: SpriteDefault,
		Theme:      ThemeDefault,
		Width:      WidthDefault,
		Height:     HeightDefault,
		path:       path,
	}
}

// Path returns where the state is saved, empty when it is kept in memory only.
func (s *State) Path() string {
	return s.path
}

// Load reads the state from path, decrypts and verifies it.
// Any failure yields default settings.
func Load(path string) *State {
	encrypted, err := os.ReadFile(path)
	if err != nil {
		return New(path)
	}

	decrypted, err := decrypt(encrypted)
	if err != nil || len(decrypted) < 5 {
		return New(path)
	}

	crcStored := binary.LittleEndian.Uint32(decrypted[:4])
	payload := decrypted[4:]
	if crc32.ChecksumIEEE(payload) != crcStored {
		return New(path)
	}

	s := New(path)
	if err := json.Unmarshal(payload, s); err != nil {
		return New(path) // Corrupted JSON
	}
	return s
}

// DefaultPath returns the save file inside the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "snake", "state.dat"), nil
}

// Save persists the state to an encrypted file with an integrity check.
func (s *State) Save() error {
	if s.path == "" {
		return errors.New("state: no save path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("state: %w", err)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("state: encode: %w", err)
	}

	// Prepend CRC32 checksum
	crc := crc32.ChecksumIEEE(raw)
	data := make([]byte, 4+len(raw))
	binary.LittleEndian.PutUint32(data[:4], crc)
	copy(data[4:], raw)

	encrypted, err := encrypt(data)
	if err != nil {
		return fmt.Errorf("state: encrypt: %w", err)
	}
	return os.WriteFile(s.path, encrypted, 0644)
}

// InitSound creates the sound manager. If audio is unavailable the game is
// forced into mute mode for this session, keeping the saved preference.
func (s *State) InitSound() {
	mgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		s.SoundManager = nil
		return
	}
	if err := mgr.LoadSamples(); err != nil {
		log.Printf("sound disabled: %v", err)
		mgr.Close()
		s.SoundManager = nil
		return
	}
	s.SoundManager = mgr
	s.SetMute(s.Mute)
}

// SetMute toggles the mute state and applies it to the sound manager.
func (s *State) SetMute(mute bool) {
	s.Mute = mute
	if s.SoundManager == nil {
		return
	}
	if s.Mute {
		s.SoundManager.Mute()
	} else {
		s.SoundManager.Unmute()
	}
}

var fallbackLocation = geoip.LocationInfo{
	Country:  "The Netherlands",
	City:     "Amsterdam",
	Lat:      52.3728,
	Lon:      4.88805,
	Timezone: "Europe/Amsterdam",
}

// Locate refreshes LocationInfo, keeping the last known one when the lookup fails.
func (s *State) Locate() {
	loc, err := geoip.GetLocationInfo()
	if err != nil {
		log.Printf("geoip lookup failed: %v", err)
	}
	switch {
	case err == nil:
		s.LocationInfo = *loc
	case s.LocationInfo.Timezone == "":
		s.LocationInfo = fallbackLocation
	}
}

// Qualifies reports whether score would enter the high-score table.
func (s *State) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	return len(s.HighScores) < MaxHighScores || score > s.HighScores[len(s.HighScores)-1].Score
}

// AddHighScore inserts hs into the table and returns its rank starting at 1,
// or 0 when it did not make the table.
func (s *State) AddHighScore(hs HighScore) int {
	if !s.Qualifies(hs.Score) {
		return 0
	}
	if hs.Nick == "" {
		hs.Nick = "anonymous"
	}
	s.HighScores = append(s.HighScores, hs)
	sort.SliceStable(s.HighScores, func(i, j int) bool {
		return s.HighScores[i].Score > s.HighScores[j].Score
	})
	if len(s.HighScores) > MaxHighScores {
		s.HighScores = s.HighScores[:MaxHighScores]
	}
	for i := range s.HighScores {
		if s.HighScores[i].Session == hs.Session && s.HighScores[i].Score == hs.Score {
			return i + 1
		}
	}
	return 0
}

// Best returns the top high score.
func (s *State) Best() (HighScore, bool) {
	if len(s.HighScores) == 0 {
		return HighScore{}, false
	}
	return s.HighScores[0], true
}

// ======================
// 🔐 AES Encryption
// ======================

func encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	return gcm.Open(nil, ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():], nil)
}
