package translate_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/calG1/PDF-Translator/internal/translate"
)

var _ = Describe("ParseBatchResponse", func() {
	originals := []string{"hello", "world"}

	It("should decode a plain JSON array", func() {
		out := translate.ParseBatchResponse(`["hola","mundo"]`, originals)
		Expect(out).To(Equal([]string{"hola", "mundo"}))
	})

	It("should strip markdown code fences before decoding", func() {
		out := translate.ParseBatchResponse("```json\n[\"hola\",\"mundo\"]\n```", originals)
		Expect(out).To(Equal([]string{"hola", "mundo"}))
	})

	It("should fall back to marked originals on unparseable content", func() {
		out := translate.ParseBatchResponse("Sorry, I cannot help with that.", originals)
		Expect(out).To(Equal([]string{"[Error] hello", "[Error] world"}))
	})

	It("should fall back when the payload is not an array of strings", func() {
		out := translate.ParseBatchResponse(`{"hola": "mundo"}`, originals)
		Expect(out).To(Equal([]string{"[Error] hello", "[Error] world"}))
	})
})

var _ = Describe("DetectProvider", func() {
	DescribeTable("correcting the configured provider from the key shape",
		func(configured, apiKey, expected string) {
			Expect(translate.DetectProvider(configured, apiKey)).To(Equal(expected))
		},
		Entry("Google key with openai configured", translate.ProviderOpenAI, "AIzaSyExample", translate.ProviderGemini),
		Entry("OpenAI key with gemini configured", translate.ProviderGemini, "sk-example", translate.ProviderOpenAI),
		Entry("matching openai key", translate.ProviderOpenAI, "sk-example", translate.ProviderOpenAI),
		Entry("matching gemini key", translate.ProviderGemini, "AIzaSyExample", translate.ProviderGemini),
		Entry("free provider is never redirected", translate.ProviderFree, "sk-example", translate.ProviderFree),
		Entry("empty key", translate.ProviderOpenAI, "", translate.ProviderOpenAI),
	)
})

var _ = Describe("NewProvider", func() {
	It("should fall back to the mock provider without an API key", func() {
		p, err := translate.NewProvider(translate.ProviderOpenAI, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&translate.Mock{}))

		p, err = translate.NewProvider(translate.ProviderGemini, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(BeAssignableToTypeOf(&translate.Mock{}))
	})

	It("should reject unknown provider tags", func() {
		_, err := translate.NewProvider("deepl", "key")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Mock", func() {
	It("should tag each text with the target language", func() {
		m := &translate.Mock{}
		out, err := m.Translate(context.Background(), []string{"one", "two"}, "es")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]string{"[ES] one", "[ES] two"}))
	})

	It("should honor context cancellation during the simulated delay", func() {
		m := &translate.Mock{Delay: time.Minute}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := m.Translate(ctx, []string{"one"}, "es")
		Expect(err).To(MatchError(context.Canceled))
	})
})
