package checksum

import (
	"strings"
	"testing"
)

func BenchmarkCalculateRaw(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("<node jcr:primaryType=\"nt:unstructured\" sling:resourceType=\"core/text\"/>\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateRaw(content)
	}
}

func BenchmarkCalculateNormalized(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("<node\n    jcr:primaryType=\"nt:unstructured\"/> <!-- c -->\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateNormalized(content)
	}
}
