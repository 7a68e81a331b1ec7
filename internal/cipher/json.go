package cipher

import "encoding/json"

// Characters are encoded as one-character strings rather than code points.

func (s EncryptionStep) MarshalJSON() ([]byte, error) {
	type step EncryptionStep
	return json.Marshal(struct {
		step
		Original  string `json:"original"`
		Encrypted string `json:"encrypted"`
	}{step(s), string(s.Original), string(s.Encrypted)})
}

func (s DecryptionStep) MarshalJSON() ([]byte, error) {
	type step DecryptionStep
	return json.Marshal(struct {
		step
		Original  string `json:"original"`
		Decrypted string `json:"decrypted"`
	}{step(s), string(s.Original), string(s.Decrypted)})
}

func (e FrequencyEntry) MarshalJSON() ([]byte, error) {
	type entry FrequencyEntry
	return json.Marshal(struct {
		entry
		Letter string `json:"letter"`
	}{entry(e), string(e.Letter)})
}
