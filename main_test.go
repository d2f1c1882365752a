package main_test

import (
	"compress/gzip"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		workDir     string
		datasetPath string
		stdin       string
		session     *gexec.Session
	)

	run := func(path string, args ...string) *gexec.Session {
		cmd := exec.Command(path, args...)
		cmd.Env = append(os.Environ(), "PWDKEK_DATASET="+datasetPath)
		cmd.Dir = workDir

		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}

		s, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	BeforeEach(func() {
		var err error
		workDir, err = os.MkdirTemp("", "pwdkek-main")
		Expect(err).NotTo(HaveOccurred())

		datasetPath = filepath.Join(workDir, "dataset.txt")
		err = os.WriteFile(datasetPath, []byte("123456\nletmein\npassword\npassword1\nqwerty\n"), 0644)
		Expect(err).NotTo(HaveOccurred())

		stdin = ""
	})

	AfterEach(func() {
		Expect(os.RemoveAll(workDir)).To(Succeed())
	})

	Describe("EstimateCommand", func() {
		It("estimates passwords given as arguments", func() {
			session = run(cliPath, "estimate", "password")

			Eventually(session.Out).Should(gbytes.Say(`Password entropy: 1\.32`))
			Eventually(session.Out).Should(gbytes.Say("Time to decode: 0 years 0 days 0 hours 0 minutes 0 seconds"))
			Eventually(session.Out).Should(gbytes.Say("Tier: .*Pathetic"))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("describes unbounded times to decode", func() {
			session = run(cliPath, "estimate", "zZ#kq9Lm")

			Eventually(session.Out).Should(gbytes.Say("Time to decode: Uncountable number of years"))
			Eventually(session.Out).Should(gbytes.Say("Tier: .*Extreme"))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("uses the extended scale when asked", func() {
			session = run(cliPath, "estimate", "--scale", "extended", "zZ#kq9Lm")

			Eventually(session.Out).Should(gbytes.Say("Tier: .*Ultra-Extreme"))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("gives the same entropy with the trie index", func() {
			session = run(cliPath, "estimate", "--index", "trie", "password")

			Eventually(session.Out).Should(gbytes.Say(`Password entropy: 1\.32`))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("shows the zxcvbn baseline when asked", func() {
			session = run(cliPath, "estimate", "--baseline", "password")

			Eventually(session.Out).Should(gbytes.Say(`Baseline entropy \(zxcvbn\)`))
			Eventually(session.Out).Should(gbytes.Say(`Baseline entropy per character: \d+\.\d\d`))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("fails for characters outside the alphabet", func() {
			session = run(cliPath, "estimate", "pass word")

			Eventually(session.Err).Should(gbytes.Say("invalid characters"))
			Eventually(session).Should(gexec.Exit(1))
		})

		It("prompts for passwords on STDIN", func() {
			stdin = "password\npass word\nqwerty\n"
			session = run(cliPath, "estimate")

			Eventually(session.Out).Should(gbytes.Say("Enter a password: Password entropy"))
			Eventually(session.Out).Should(gbytes.Say("invalid characters"))
			Eventually(session.Out).Should(gbytes.Say("Tier: .*Pathetic"))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("stops prompting at an empty line", func() {
			stdin = "password\n\nqwerty\n"
			session = run(cliPath, "estimate")

			Eventually(session).Should(gexec.Exit(0))
			Expect(strings.Count(string(session.Out.Contents()), "Password entropy")).To(Equal(1))
			Expect(strings.Count(string(session.Out.Contents()), "Enter a password: ")).To(Equal(2))
		})

		It("gives a finite time to two characters without corpus support", func() {
			session = run(cliPath, "estimate", "zZ")

			Eventually(session.Out).Should(gbytes.Say(`Time to decode: 31\d years`))
			Eventually(session.Out).Should(gbytes.Say("Tier: .*Extreme"))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("fails when the dataset is missing", func() {
			datasetPath = filepath.Join(workDir, "missing.txt.gz")
			session = run(cliPath, "estimate", "password")

			Eventually(session.Err).Should(gbytes.Say("loading dataset"))
			Eventually(session).Should(gexec.Exit(1))
		})

		It("fails when the dataset is empty", func() {
			Expect(os.WriteFile(datasetPath, []byte{}, 0644)).To(Succeed())
			session = run(cliPath, "estimate", "password")

			Eventually(session.Err).Should(gbytes.Say("corpus is empty"))
			Eventually(session).Should(gexec.Exit(1))
		})
	})

	Describe("AuditCommand", func() {
		Context("when given passwords on STDIN", func() {
			BeforeEach(func() {
				stdin = "password\nzZ#kq9Lm\nqwerty\n"
			})

			It("reports the weak ones and exits with status 3", func() {
				session = run(cliPath, "audit")

				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\].* STDIN:1 .*Pathetic`))
				Eventually(session.Out).Should(gbytes.Say(`STDIN:3`))
				Eventually(session.Out).Should(gbytes.Say("Found 2 password"))
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("STDIN:2"))
			})

			It("shows weak passwords when asked", func() {
				session = run(cliPath, "audit", "--show-weak-passwords")

				Eventually(session.Out).Should(gbytes.Say(`\[password\]`))
				Eventually(session).Should(gexec.Exit(3))
			})

			It("exits with status 0 when nothing is weak enough", func() {
				session = run(cliPath, "audit", "--min-tier", "pathetic")

				Eventually(session).Should(gexec.Exit(0))
			})

			It("rejects unknown tiers", func() {
				session = run(cliPath, "audit", "--min-tier", "strong")

				Eventually(session.Err).Should(gbytes.Say("unknown tier"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("when given a file with assignments", func() {
			BeforeEach(func() {
				config := "db_password: \"letmein\"\nuser: admin\napi_token: \"zZ#kq9Lm\"\nsecret: \"fake_secret\"\n"
				Expect(os.WriteFile(filepath.Join(workDir, "config.yml"), []byte(config), 0644)).To(Succeed())
			})

			It("reports weak assigned values", func() {
				session = run(cliPath, "audit", "--assignments", "-f", "config.yml")

				Eventually(session.Out).Should(gbytes.Say("config.yml:1"))
				Eventually(session).Should(gexec.Exit(3))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("config.yml:3"))
				Expect(session.Out.Contents()).NotTo(ContainSubstring("config.yml:4"))
			})
		})

		Context("when the executable is old", func() {
			It("warns", func() {
				stdin = "zZ#kq9Lm\n"
				session = run(oldCliPath, "audit")

				Eventually(session.Err).Should(gbytes.Say("Executable is old!"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})
	})

	Describe("PrepareCommand", func() {
		It("filters, sorts and compresses a raw list", func() {
			raw := filepath.Join(workDir, "raw.txt")
			Expect(os.WriteFile(raw, []byte("qwerty\npass word\n123456\n\n"), 0644)).To(Succeed())

			session = run(cliPath, "prepare", "-i", raw, "-o", "prepared.txt.gz")
			Eventually(session.Out).Should(gbytes.Say("kept 3 of 4 lines"))
			Eventually(session).Should(gexec.Exit(0))

			file, err := os.Open(filepath.Join(workDir, "prepared.txt.gz"))
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			gz, err := gzip.NewReader(file)
			Expect(err).NotTo(HaveOccurred())

			contents, err := io.ReadAll(gz)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal("123456\npassword\nqwerty\n"))

			datasetPath = filepath.Join(workDir, "prepared.txt.gz")
			session = run(cliPath, "estimate", "qwerty")
			Eventually(session.Out).Should(gbytes.Say(`Password entropy: 1\.58`))
			Eventually(session).Should(gexec.Exit(0))
		})
	})

	Describe("CompactCommand and InspectCommand", func() {
		It("writes a quantized model that can be inspected", func() {
			session = run(cliPath, "compact", "-o", "res.pfx")
			Eventually(session.Out).Should(gbytes.Say(`wrote \d+ bytes to res.pfx`))
			Eventually(session).Should(gexec.Exit(0))

			session = run(cliPath, "inspect", "-m", "res.pfx", "-p", "pass")
			Eventually(session.Out).Should(gbytes.Say(`Records: \d+`))
			Eventually(session.Out).Should(gbytes.Say(`Depth: 9`))
			Eventually(session.Out).Should(gbytes.Say(`Transitions after "pass":`))
			Eventually(session.Out).Should(gbytes.Say(`w 255 1\.0000`))
			Eventually(session).Should(gexec.Exit(0))
		})

		It("fails to inspect a truncated model", func() {
			Expect(os.WriteFile(filepath.Join(workDir, "res.pfx"), []byte{1, 2, 3}, 0644)).To(Succeed())

			session = run(cliPath, "inspect", "-m", "res.pfx")
			Eventually(session.Err).Should(gbytes.Say("decoding res.pfx"))
			Eventually(session).Should(gexec.Exit(1))
		})
	})

	Describe("ServeCommand", func() {
		var port int

		BeforeEach(func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())
			port = listener.Addr().(*net.TCPAddr).Port
			Expect(listener.Close()).To(Succeed())
		})

		AfterEach(func() {
			session.Interrupt()
			Eventually(session).Should(gexec.Exit())
		})

		It("serves estimates over HTTP", func() {
			session = run(cliPath, "serve", "--bind-port", fmt.Sprintf("%d", port))

			url := fmt.Sprintf("http://127.0.0.1:%d", port)
			Eventually(func() error {
				resp, err := http.Get(url + "/healthz")
				if err == nil {
					resp.Body.Close()
				}
				return err
			}).Should(Succeed())

			resp, err := http.Post(url+"/v1/estimate", "application/json", strings.NewReader(`{"password": "password"}`))
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(string(body)).To(ContainSubstring(`"tier":"Pathetic"`))

			resp, err = http.Get(url + "/metrics")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()

			body, err = io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(ContainSubstring(`pwdkek_estimates_total{tier="Pathetic"} 1`))
		})

		It("reads a config file", func() {
			configPath := filepath.Join(workDir, "serve.yml")
			configFile := fmt.Sprintf("bind_port: %d\ndataset:\n  index: trie\nmetrics:\n  disabled: true\n", port)
			Expect(os.WriteFile(configPath, []byte(configFile), 0644)).To(Succeed())

			session = run(cliPath, "serve", "--config-file", configPath)

			url := fmt.Sprintf("http://127.0.0.1:%d", port)
			Eventually(func() error {
				resp, err := http.Get(url + "/healthz")
				if err == nil {
					resp.Body.Close()
				}
				return err
			}).Should(Succeed())

			resp, err := http.Get(url + "/metrics")
			Expect(err).NotTo(HaveOccurred())
			resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("reports every configuration problem", func() {
			session = run(cliPath, "serve", "--bind-ip", "nowhere", "--scale", "huge")

			Eventually(session.Err).Should(gbytes.Say("invalid bind ip"))
			Eventually(session.Err).Should(gbytes.Say("unknown scale"))
			Eventually(session).Should(gexec.Exit(1))
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			session = run(cliPath, "version")

			Eventually(session.Out).Should(gbytes.Say("dev"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})
})
