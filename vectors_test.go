package xorcrack

const (
	cookingHex = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"
	cookingPT  = "Cooking MC's like a pound of bacon"

	iceHex = "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623" +
		"d63343c2a26226324272765272a282b2f20430a652e2c652a3" +
		"124333a653e2b2027630c692b20283165286326302e27282f"
	icePT = "Burning 'em, if you ain't quick and nimble\n" +
		"I go crazy when I hear a cymbal"
)

func mustHex(s string) Bytes {
	b, err := DecodeHex(s)
	if err != nil {
		panic(err)
	}
	return b
}
